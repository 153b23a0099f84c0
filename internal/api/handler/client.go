package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/AirPlr/smart-control-api/infrastructure/repository"
	"github.com/AirPlr/smart-control-api/pkg/apiErrors"
)

// ListClients lista a anagrafe de clientes
func ListClients(repo repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := repo.ListClients()
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao listar clientes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(clients)
	}
}

// GetClient retorna um cliente da anagrafe pelo ID
func GetClient(repo repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientID, err := paramID(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do cliente inválido", nil)
			return
		}

		client, err := repo.GetClientByID(clientID)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao buscar cliente", nil)
			return
		}

		if client == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Cliente não encontrado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(client)
	}
}
