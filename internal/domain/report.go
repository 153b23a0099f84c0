package domain

// MonthlyPerformance agrega os números de um mês de atividade
type MonthlyPerformance struct {
	Month                string  `json:"month"` // Formato aaaa-mm
	TotalAppointments    int     `json:"total_appointments"`
	SoldAppointments     int     `json:"sold_appointments"`
	CollectedNames       int     `json:"collected_names"`
	PersonalAppointments int     `json:"personal_appointments"`
	ConversionRate       float64 `json:"conversion_rate"`
}

// ConsultantRankingEntry é uma posição da classifica de consultores
type ConsultantRankingEntry struct {
	Rank              int     `json:"rank"`
	ConsultantID      int     `json:"consultant_id"`
	Name              string  `json:"name"`
	Position          string  `json:"position"`
	TotalAppointments int     `json:"total_appointments"`
	SoldAppointments  int     `json:"sold_appointments"`
	CollectedNames    int     `json:"collected_names"`
	GroupSales        int     `json:"group_sales"`
	ConversionRate    float64 `json:"conversion_rate"`
}
