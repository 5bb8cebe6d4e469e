package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/salted/internal/adapters/fs"
	"github.com/trebuchet-org/salted/internal/adapters/interactive"
	"github.com/trebuchet-org/salted/internal/adapters/progress"
	"github.com/trebuchet-org/salted/internal/usecase"
	"github.com/trebuchet-org/salted/pkg/evm"
	"github.com/trebuchet-org/salted/pkg/factory"
)

// ProvideExecutor provides the EVM interpreter that runs init code
func ProvideExecutor() factory.Executor {
	return evm.NewExecutor()
}

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewLedgerStoreAdapter,
	wire.Bind(new(usecase.LedgerStore), new(*fs.LedgerStoreAdapter)),

	fs.NewDeploymentStoreAdapter,
	wire.Bind(new(usecase.DeploymentStore), new(*fs.DeploymentStoreAdapter)),
)

// ExecutorSet provides the init code executor
var ExecutorSet = wire.NewSet(
	ProvideExecutor,
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.DeploymentSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
)

// ProgressSet provides the progress sink matching the terminal mode
var ProgressSet = wire.NewSet(
	progress.NewSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	FSSet,
	ExecutorSet,
	InteractiveSet,
	ProgressSet,
)
