package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T) (*Service, *MockRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)

	return NewService(repo, "test-secret", time.Hour), repo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(m *MockRepository)
		wantErr   error
	}{
		{
			name: "Success",
			setupMock: func(m *MockRepository) {
				m.EXPECT().GetAccountByEmail(gomock.Any(), "ada@example.com").Return(nil, ErrAccountNotFound)
				m.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, account *Account) error {
						assert.NotEmpty(t, account.ID)
						assert.Equal(t, "Ada", account.Name)
						assert.NotEqual(t, "hunter2", account.PasswordHash)
						return nil
					})
			},
		},
		{
			name: "EmailTaken",
			setupMock: func(m *MockRepository) {
				m.EXPECT().GetAccountByEmail(gomock.Any(), "ada@example.com").Return(&Account{ID: "1"}, nil)
			},
			wantErr: ErrEmailTaken,
		},
		{
			name: "LookupError",
			setupMock: func(m *MockRepository) {
				m.EXPECT().GetAccountByEmail(gomock.Any(), "ada@example.com").Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			tt.setupMock(repo)

			account, err := svc.Register(context.Background(), "Ada", "ada@example.com", "hunter2")

			if tt.wantErr != nil {
				assert.ErrorContains(t, err, tt.wantErr.Error())
				assert.Nil(t, account)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, account)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte("hunter2")))
		})
	}
}

func TestService_Login(t *testing.T) {
	account := &Account{ID: "acc-1", Name: "Ada", Email: "ada@example.com"}

	tests := []struct {
		name      string
		password  string
		setupMock func(t *testing.T, m *MockRepository)
		wantErr   error
	}{
		{
			name:     "Success",
			password: "hunter2",
			setupMock: func(t *testing.T, m *MockRepository) {
				stored := *account
				stored.PasswordHash = hashPassword(t, "hunter2")
				m.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(&stored, nil)
			},
		},
		{
			name:     "WrongPassword",
			password: "letmein",
			setupMock: func(t *testing.T, m *MockRepository) {
				stored := *account
				stored.PasswordHash = hashPassword(t, "hunter2")
				m.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(&stored, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:     "UnknownEmail",
			password: "hunter2",
			setupMock: func(t *testing.T, m *MockRepository) {
				m.EXPECT().GetAccountByEmail(gomock.Any(), account.Email).Return(nil, ErrAccountNotFound)
			},
			wantErr: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			tt.setupMock(t, repo)

			token, got, err := svc.Login(context.Background(), account.Email, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, account.ID, got.ID)

			subject, err := svc.Verify(token)
			require.NoError(t, err)
			assert.Equal(t, account.ID, subject)
		})
	}
}

func TestService_Verify_RejectsBadTokens(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewService(nil, "other-secret", time.Hour)
	token, err := other.issueToken("acc-1")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Verify_RejectsExpiredToken(t *testing.T) {
	svc, _ := newTestService(t)
	svc.tokenTTL = -time.Minute

	token, err := svc.issueToken("acc-1")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
