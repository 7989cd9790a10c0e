// Package di wires the services used by the CLI commands with samber/do.
package di

import (
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Injector is the dependency container handed to command handlers.
type Injector = do.Injector

// Module registers dependencies with an injector.
type Module func(Injector) error

// Handler is a cobra command handler with access to the injector.
type Handler func(cmd *cobra.Command, args []string, injector Injector) error

// Runtime builds a fresh injector for every invocation from its base modules.
type Runtime struct {
	modules []Module
}

// New creates a Runtime with the given base modules.
func New(modules ...Module) *Runtime {
	return &Runtime{modules: modules}
}

// Invoke creates an injector, applies the base modules followed by extra,
// runs handler and shuts the injector down. Nil modules are skipped and the
// first module error is returned unchanged.
func (r *Runtime) Invoke(handler func(Injector) error, extra ...Module) error {
	injector := do.New()
	defer func() { _ = injector.Shutdown() }()

	modules := make([]Module, 0, len(r.modules)+len(extra))
	modules = append(modules, r.modules...)
	modules = append(modules, extra...)

	for _, module := range modules {
		if module == nil {
			continue
		}

		err := module(injector)
		if err != nil {
			return err
		}
	}

	return handler(injector)
}

// RunEWithRuntime adapts a Handler into a cobra RunE function. extra modules
// are built per call, after the command flags have been parsed.
func RunEWithRuntime(
	runtime *Runtime,
	handler Handler,
	extra ...func(cmd *cobra.Command) Module,
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		modules := make([]Module, 0, len(extra))
		for _, build := range extra {
			modules = append(modules, build(cmd))
		}

		return runtime.Invoke(func(injector Injector) error {
			return handler(cmd, args, injector)
		}, modules...)
	}
}
