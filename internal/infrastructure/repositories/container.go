package repositories

import (
	domainRepos "github.com/rios0rios0/outdated/internal/domain/repositories"
	dotnetRepo "github.com/rios0rios0/outdated/internal/infrastructure/repositories/dotnet"
	gogitRepo "github.com/rios0rios0/outdated/internal/infrastructure/repositories/gogit"
	goRepo "github.com/rios0rios0/outdated/internal/infrastructure/repositories/golang"
	processRepo "github.com/rios0rios0/outdated/internal/infrastructure/repositories/process"
	tfRepo "github.com/rios0rios0/outdated/internal/infrastructure/repositories/terraform"
	"go.uber.org/dig"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the process runner and bind its interface
	if err := container.Provide(processRepo.NewProcessRunnerRepository); err != nil {
		return err
	}
	if err := container.Provide(func(impl *processRepo.ProcessRunnerRepository) domainRepos.RunnerRepository {
		return impl
	}); err != nil {
		return err
	}

	// Register the remote tags lister and bind its interface
	if err := container.Provide(gogitRepo.NewGogitRemoteTagsRepository); err != nil {
		return err
	}
	if err := container.Provide(func(impl *gogitRepo.GogitRemoteTagsRepository) domainRepos.RemoteTagsRepository {
		return impl
	}); err != nil {
		return err
	}

	// Register checker registry with all checker implementations
	if err := container.Provide(func(
		runner domainRepos.RunnerRepository,
		tags domainRepos.RemoteTagsRepository,
	) *CheckerRegistry {
		reg := NewCheckerRegistry()
		reg.Register(dotnetRepo.NewDotnetCheckerRepository(runner))
		reg.Register(goRepo.NewGolangCheckerRepository(runner))
		reg.Register(tfRepo.NewTerraformCheckerRepository(tags))
		return reg
	}); err != nil {
		return err
	}

	return nil
}
