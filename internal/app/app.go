// Package app implements the application layer for grip.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/grip/internal/adapters/detector"
	"go.trai.ch/grip/internal/adapters/linear"
	"go.trai.ch/grip/internal/adapters/telemetry"
	"go.trai.ch/grip/internal/adapters/tui"
	"go.trai.ch/grip/internal/core/domain"
	"go.trai.ch/grip/internal/core/ports"
	"go.trai.ch/grip/internal/engine/pipeline"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	manifests  ports.ManifestStore
	workspace  ports.Workspace
	fetcher    ports.SourceFetcher
	integrator ports.Integrator
	patcher    ports.DescriptorPatcher
	cleaner    ports.Cleaner
	runner     ports.CommandRunner
	logger     ports.Logger
	settings   domain.Settings
	platform   domain.Platform

	teaOptions []tea.ProgramOption
}

// New creates a new App instance.
func New(
	manifests ports.ManifestStore,
	workspace ports.Workspace,
	fetcher ports.SourceFetcher,
	integrator ports.Integrator,
	patcher ports.DescriptorPatcher,
	cleaner ports.Cleaner,
	runner ports.CommandRunner,
	logger ports.Logger,
	settings domain.Settings,
	platform domain.Platform,
) *App {
	return &App{
		manifests:  manifests,
		workspace:  workspace,
		fetcher:    fetcher,
		integrator: integrator,
		patcher:    patcher,
		cleaner:    cleaner,
		runner:     runner,
		logger:     logger,
		settings:   settings,
		platform:   platform,
	}
}

// WithTeaOptions adds bubbletea program options to the App. This is primarily
// used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// InstallOptions configures one install invocation.
type InstallOptions struct {
	// Version is the requested version/branch; empty means the platform
	// default branch.
	Version string
	// Output overrides the renderer selection: "auto", "tui" or "plain".
	Output string
}

// Install fetches and integrates one dependency, rendering progress while
// the pipeline runs.
func (a *App) Install(ctx context.Context, root, name string, opts InstallOptions) error {
	feed := telemetry.NewFeed()
	renderer := a.newRenderer(feed, opts.Output)
	recorder := telemetry.NewRecorder(feed)

	pipe := pipeline.New(
		a.manifests,
		a.workspace,
		a.fetcher,
		a.integrator,
		a.patcher,
		a.cleaner,
		recorder,
		a.logger,
		a.platform,
	)

	var report *domain.InstallReport

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := renderer.Start(gctx); err != nil {
			return err
		}
		return renderer.Wait()
	})

	g.Go(func() error {
		defer func() {
			// Ends the feed so the renderer drains and exits.
			_ = recorder.Close()
			_ = renderer.Stop()
		}()
		r, err := pipe.Install(gctx, root, name, opts.Version)
		report = r
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	a.printInstallSummary(report)
	return nil
}

func (a *App) newRenderer(feed *telemetry.Feed, override string) ports.Renderer {
	mode := override
	if mode == "" || mode == "auto" {
		mode = a.settings.Output
	}

	if detector.ResolveMode(detector.DetectEnvironment(), mode) == detector.ModeTUI {
		return tui.NewRenderer(tui.NewModel(feed), a.teaOptions...)
	}
	return linear.NewRenderer(feed, os.Stderr)
}

func (a *App) printInstallSummary(report *domain.InstallReport) {
	if report == nil {
		return
	}
	if report.AlreadyInstalled {
		a.logger.Info(fmt.Sprintf("%s is already installed (version %s)",
			report.Dependency, report.ResolvedVersion))
		return
	}
	a.logger.Info(fmt.Sprintf("installed %s@%s: %d headers, %d libraries",
		report.Dependency, report.ResolvedVersion, report.HeaderCount, len(report.Libraries)))
}

// List prints the installed dependencies, sorted by name.
func (a *App) List(_ context.Context, root string, out io.Writer) error {
	manifest, err := a.manifests.Load(root)
	if err != nil {
		return err
	}

	deps := manifest.SortedDependencies()
	if len(deps) == 0 {
		_, _ = fmt.Fprintln(out, "no dependencies installed")
		return nil
	}
	for _, dep := range deps {
		_, _ = fmt.Fprintf(out, "%s %s\n", dep.Name, dep.Version)
	}
	return nil
}

// Build forwards to the external build tool: configure, then compile.
func (a *App) Build(ctx context.Context, root string) error {
	if _, err := a.manifests.Load(root); err != nil {
		return err
	}

	cmake := a.settings.CMakeTool
	if err := a.runner.RunInteractive(ctx, root, cmake, "-S", ".", "-B", domain.BuildDirName); err != nil {
		return errors.Join(domain.ErrExternalTool, err)
	}
	if err := a.runner.RunInteractive(ctx, root, cmake, "--build", domain.BuildDirName); err != nil {
		return errors.Join(domain.ErrExternalTool, err)
	}
	return nil
}

// Run executes the built target, forwarding extra arguments to it.
func (a *App) Run(ctx context.Context, root string, args []string) error {
	manifest, err := a.manifests.Load(root)
	if err != nil {
		return err
	}

	layout := domain.NewLayout(root)
	target := layout.RunTarget(manifest.Name, a.platform)
	if _, err := os.Stat(target); err != nil {
		return zerr.With(domain.ErrRunTargetMissing, "target", target)
	}

	if err := a.runner.RunInteractive(ctx, root, target, args...); err != nil {
		return errors.Join(domain.ErrExternalTool, err)
	}
	return nil
}

// Init creates a manifest and a minimal project scaffold, prompting for
// project metadata with sensible defaults. An existing manifest is left
// untouched.
func (a *App) Init(_ context.Context, root string, in io.Reader, out io.Writer) error {
	layout := domain.NewLayout(root)
	if _, err := os.Stat(layout.ManifestPath); err == nil {
		_, _ = fmt.Fprintln(out, "grip.json already exists, nothing to do")
		return nil
	}

	reader := bufio.NewReader(in)
	prompt := func(label, fallback string) string {
		_, _ = fmt.Fprintf(out, "%s (%s): ", label, fallback)
		line, _ := reader.ReadString('\n')
		line = strings.TrimSpace(line)
		if line == "" {
			return fallback
		}
		return line
	}

	manifest := domain.NewManifest(
		prompt("package name", "my-package"),
		prompt("version", "1.0.0"),
		prompt("author", "Anonymous"),
		prompt("license", "MIT"),
		prompt("description", "A C++ project"),
	)

	if err := a.manifests.Save(root, manifest); err != nil {
		return err
	}
	if err := a.scaffold(root, manifest); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(out, "\ninitialized %s\n", manifest.Name)
	_, _ = fmt.Fprintln(out, "next steps:")
	_, _ = fmt.Fprintln(out, "  grip install <name>   add a dependency")
	_, _ = fmt.Fprintln(out, "  grip build            compile the project")
	_, _ = fmt.Fprintln(out, "  grip run              run the built executable")
	return nil
}

// scaffold writes src/main.cpp, include/ and CMakeLists.txt. Existing files
// are never overwritten.
func (a *App) scaffold(root string, manifest *domain.Manifest) error {
	srcDir := filepath.Join(root, "src")
	for _, dir := range []string{srcDir, filepath.Join(root, "include")} {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to create project directory"), "dir", dir)
		}
	}

	mainPath := filepath.Join(srcDir, "main.cpp")
	if _, err := os.Stat(mainPath); os.IsNotExist(err) {
		content := "#include <iostream>\n\n" +
			"int main() {\n" +
			"    std::cout << \"Hello from " + manifest.Name + "!\" << std::endl;\n" +
			"    return 0;\n" +
			"}\n"
		if err := os.WriteFile(mainPath, []byte(content), 0o644); err != nil { //nolint:gosec // project source file
			return zerr.With(zerr.Wrap(err, "failed to write main.cpp"), "path", mainPath)
		}
	}

	descriptor := domain.NewLayout(root).DescriptorPath
	if _, err := os.Stat(descriptor); os.IsNotExist(err) {
		content := "cmake_minimum_required(VERSION 3.16)\n" +
			"project(" + manifest.Name + " VERSION " + manifest.Version + ")\n\n" +
			"set(CMAKE_CXX_STANDARD 17)\n" +
			"set(CMAKE_CXX_STANDARD_REQUIRED ON)\n\n" +
			"add_executable(${PROJECT_NAME} src/main.cpp)\n" +
			"include_directories(include)\n"
		if err := os.WriteFile(descriptor, []byte(content), 0o644); err != nil { //nolint:gosec // project build file
			return zerr.With(zerr.Wrap(err, "failed to write build description"), "path", descriptor)
		}
	}
	return nil
}
