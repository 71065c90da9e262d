package impl

import (
	"context"
	"testing"

	"kolotebe/internal/domain/entity"
	domainerrors "kolotebe/internal/domain/errors"
	"kolotebe/internal/domain/repository"
	mockRepo "kolotebe/internal/mocks/repository"
	mockSvc "kolotebe/internal/mocks/service"
	"kolotebe/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		txManager:    txManager,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(nil, repository.ErrUserNotFound)

			mockUserRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(ctx context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	assert.Equal(t, entity.RoleUser, output.User.Role)
	assert.Equal(t, "hashed_password", output.User.PasswordHash)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_RegisterUser_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "taken@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)

			mockFactory.EXPECT().UserRepo().Return(mockUserRepo)

			mockUserRepo.EXPECT().
				FindByEmail(ctx, input.Email).
				Return(&entity.User{ID: uuid.New(), Email: input.Email}, nil)

			return fn(mockFactory)
		})

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterUserInput{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("bcrypt failure"))

	output, err := fx.service.RegisterUser(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
	}
	input := &usecase.LoginInput{Email: storedUser.Email, Password: "Password123!"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.PasswordHash).Return(true)
	fx.tokenService.EXPECT().
		GenerateToken(storedUser.ID, storedUser.Email, storedUser.Role).
		Return("access-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, storedUser, output.User)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "missing@example.com", Password: "whatever"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleUser,
	}
	input := &usecase.LoginInput{Email: storedUser.Email, Password: "wrong"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser, nil)
	fx.hasher.EXPECT().Check(input.Password, storedUser.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_PasswordlessAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:    uuid.New(),
		Email: "oauth@example.com",
		Role:  entity.RoleUser,
	}
	input := &usecase.LoginInput{Email: storedUser.Email, Password: "anything"}

	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(storedUser, nil)

	output, err := fx.service.Login(ctx, input)

	assert.Nil(t, output)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_CheckUser_Exists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:           uuid.New(),
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, storedUser.Email).Return(storedUser, nil)

	output, err := fx.service.CheckUser(ctx, storedUser.Email)

	require.NoError(t, err)
	assert.True(t, output.Exists)
	assert.True(t, output.HasPassword)
}

func TestUserService_CheckUser_MissingIsNotAnError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "missing@example.com").Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.CheckUser(ctx, "missing@example.com")

	require.NoError(t, err)
	assert.False(t, output.Exists)
	assert.False(t, output.HasPassword)
}

func TestUserService_CheckRole_Admin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	storedUser := &entity.User{
		ID:    uuid.New(),
		Email: "admin@example.com",
		Role:  entity.RoleAdmin,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, storedUser.Email).Return(storedUser, nil)

	capabilities, err := fx.service.CheckRole(ctx, storedUser.Email)

	require.NoError(t, err)
	assert.True(t, capabilities.IsAdmin)
	assert.True(t, capabilities.IsDeveloper)
	assert.False(t, capabilities.IsModerator)
}

func TestUserService_CheckRole_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().FindByEmail(ctx, "missing@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.CheckRole(ctx, "missing@example.com")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
