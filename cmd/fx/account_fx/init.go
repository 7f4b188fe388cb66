package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"wayfarer/internal/repositories"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository, issuer *utils.TokenIssuer) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, issuer)
}
