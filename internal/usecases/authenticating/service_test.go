package authenticating

import (
	"testing"

	"github.com/AirPlr/smart-control-api/infrastructure/repository/mocks"
	"github.com/AirPlr/smart-control-api/internal/config"
	"github.com/AirPlr/smart-control-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	mockUserRepo := mocks.NewMockUserRepository(ctrl)

	service := NewService(mockUserRepo, &config.Config{SecretKey: "segredo-de-teste"})
	return service, mockUserRepo
}

func hashOf(t *testing.T, password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hashed)
}

func TestLoginUser(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setup       func(mockUserRepo *mocks.MockUserRepository, passwordHash string)
		expectedErr error
	}{
		{
			name:     "Login com sucesso gera token",
			email:    "Mario.Rossi@Example.com",
			password: "Senha@Forte1",
			setup: func(mockUserRepo *mocks.MockUserRepository, passwordHash string) {
				// Email normalizado antes da consulta
				mockUserRepo.EXPECT().GetUserByEmail("mario.rossi@example.com").Return(&domain.User{
					ID: 1, Email: "mario.rossi@example.com", Active: true,
					PasswordHash: passwordHash, RoleID: domain.RoleAdmin,
				}, nil)
			},
		},
		{
			name:     "Usuário inexistente",
			email:    "nao@existe.com",
			password: "Senha@Forte1",
			setup: func(mockUserRepo *mocks.MockUserRepository, _ string) {
				mockUserRepo.EXPECT().GetUserByEmail("nao@existe.com").Return(nil, nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name:     "Usuário desativado",
			email:    "mario.rossi@example.com",
			password: "Senha@Forte1",
			setup: func(mockUserRepo *mocks.MockUserRepository, passwordHash string) {
				mockUserRepo.EXPECT().GetUserByEmail("mario.rossi@example.com").Return(&domain.User{
					ID: 1, Active: false, PasswordHash: passwordHash,
				}, nil)
			},
			expectedErr: ErrUserDisabled,
		},
		{
			name:     "Senha incorreta",
			email:    "mario.rossi@example.com",
			password: "senha-errada",
			setup: func(mockUserRepo *mocks.MockUserRepository, passwordHash string) {
				mockUserRepo.EXPECT().GetUserByEmail("mario.rossi@example.com").Return(&domain.User{
					ID: 1, Active: true, PasswordHash: passwordHash,
				}, nil)
			},
			expectedErr: ErrInvalidCredentials,
		},
		{
			name:        "Campos obrigatórios ausentes",
			email:       "",
			password:    "",
			setup:       func(_ *mocks.MockUserRepository, _ string) {},
			expectedErr: ErrMissingRequiredData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, mockUserRepo := newTestService(t)
			tt.setup(mockUserRepo, hashOf(t, "Senha@Forte1"))

			token, err := service.LoginUser(tt.email, tt.password)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, token)
		})
	}
}

func TestLoginUser_TokenValidado(t *testing.T) {
	service, mockUserRepo := newTestService(t)

	mockUserRepo.EXPECT().GetUserByEmail("mario.rossi@example.com").Return(&domain.User{
		ID: 1, Name: "Mario", Lastname: "Rossi",
		Email: "mario.rossi@example.com", Active: true,
		PasswordHash: hashOf(t, "Senha@Forte1"), RoleID: domain.RoleDealer,
	}, nil)

	token, err := service.LoginUser("mario.rossi@example.com", "Senha@Forte1")
	require.NoError(t, err)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.UserID)
	assert.Equal(t, domain.RoleDealer, claims.UserRoleID)
	assert.Equal(t, "mario.rossi@example.com", claims.UserEmail)
}

func TestValidateToken_TokenAdulterado(t *testing.T) {
	service, _ := newTestService(t)

	_, err := service.ValidateToken("token.invalido.mesmo")

	assert.Error(t, err)
}

func TestCreateUser(t *testing.T) {
	t.Run("Usuário novo criado inativo com perfil consultor", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		mockUserRepo.EXPECT().GetUserByEmail("giulia@example.com").Return(nil, nil)
		mockUserRepo.EXPECT().
			CreateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) (*domain.User, error) {
				assert.False(t, user.Active)
				assert.Equal(t, domain.RoleConsultant, user.RoleID)
				assert.NotEqual(t, "Senha@Forte1", user.PasswordHash)
				user.ID = 10
				return user, nil
			})

		user, err := service.CreateUser(&domain.User{
			Name: "Giulia", Lastname: "Verdi",
			Email: " Giulia@Example.com ", PasswordHash: "Senha@Forte1",
		})

		require.NoError(t, err)
		assert.Equal(t, 10, user.ID)
		assert.Equal(t, "giulia@example.com", user.Email)
	})

	t.Run("Email já cadastrado", func(t *testing.T) {
		service, mockUserRepo := newTestService(t)

		mockUserRepo.EXPECT().GetUserByEmail("giulia@example.com").Return(&domain.User{ID: 2}, nil)

		_, err := service.CreateUser(&domain.User{
			Name: "Giulia", Lastname: "Verdi",
			Email: "giulia@example.com", PasswordHash: "Senha@Forte1",
		})

		assert.ErrorIs(t, err, ErrUserAlreadyExists)
	})

	t.Run("Dados obrigatórios ausentes", func(t *testing.T) {
		service, _ := newTestService(t)

		_, err := service.CreateUser(&domain.User{Email: "giulia@example.com"})

		assert.ErrorIs(t, err, ErrMissingRequiredData)
	})
}

func TestValidatePasswordStrength(t *testing.T) {
	service, _ := newTestService(t)

	tests := []struct {
		password string
		valid    bool
	}{
		{password: "Senha@Forte1", valid: true},
		{password: "curta1!", valid: false},
		{password: "semmaiuscula@1", valid: false},
		{password: "SEMMINUSCULA@1", valid: false},
		{password: "SemNumero@!", valid: false},
		{password: "SemEspecial11", valid: false},
	}

	for _, tt := range tests {
		err := service.ValidatePasswordStrength(tt.password)
		if tt.valid {
			assert.NoError(t, err, "senha %q", tt.password)
		} else {
			assert.Error(t, err, "senha %q", tt.password)
		}
	}
}

func TestChangePassword(t *testing.T) {
	service, mockUserRepo := newTestService(t)

	mockUserRepo.EXPECT().GetUserByID(1).Return(&domain.User{
		ID: 1, PasswordHash: hashOf(t, "Senha@Antiga1"),
	}, nil)
	mockUserRepo.EXPECT().
		UpdateUser(gomock.Any()).
		DoAndReturn(func(user *domain.User) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Senha@Nova22")))
			return nil
		})

	err := service.ChangePassword(1, "Senha@Antiga1", "Senha@Nova22")

	require.NoError(t, err)
}

func TestChangePassword_SenhaAtualIncorreta(t *testing.T) {
	service, mockUserRepo := newTestService(t)

	mockUserRepo.EXPECT().GetUserByID(1).Return(&domain.User{
		ID: 1, PasswordHash: hashOf(t, "Senha@Antiga1"),
	}, nil)

	err := service.ChangePassword(1, "errada", "Senha@Nova22")

	assert.Error(t, err)
}
