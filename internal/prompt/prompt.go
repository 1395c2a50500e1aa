// Package prompt collects the three interactive answers that drive a
// scaffold run: template choice, project name, and package manager.
//
// Prompting is built on github.com/charmbracelet/huh. The actual field
// execution is held in package-level function variables so tests can
// substitute fakes instead of driving a real terminal. Validation is
// attached to the huh input field, which means an invalid project name
// re-prompts inline rather than failing the run.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/masb0ymas/create-app/internal/model"
	"github.com/masb0ymas/create-app/internal/registry"
)

// runSelect executes a single-choice list prompt.
// Package-level variable so tests can swap in a fake.
var runSelect = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

// runInput executes a free-text prompt with inline validation.
// The initial *value is shown as an editable default.
var runInput = func(title, placeholder string, value *string, validate func(string) error) error {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Validate(validate).
		Value(value).
		Run()
}

// Collector gathers a complete Selection from the terminal.
// It exists as an interface implementation target so the CLI layer can be
// exercised with a fake in tests.
type Collector struct{}

// NewCollector creates a terminal-backed Collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Collect asks the three questions in order and returns the composite
// answer set. All three must complete; any error or cancellation aborts
// the whole collection.
//
// The defaultName, when non-empty, pre-fills the project-name prompt.
// It is a suggestion only: the user can replace it freely.
func (c *Collector) Collect(entries []registry.Entry, defaultName string) (*model.Selection, error) {
	template, err := c.selectTemplate(entries)
	if err != nil {
		return nil, err
	}

	name, err := c.inputProjectName(defaultName)
	if err != nil {
		return nil, err
	}

	manager, err := c.selectPackageManager()
	if err != nil {
		return nil, err
	}

	return &model.Selection{
		Template:       template,
		ProjectName:    name,
		PackageManager: manager,
	}, nil
}

// selectTemplate runs the fixed-choice template question.
func (c *Collector) selectTemplate(entries []registry.Entry) (model.Template, error) {
	options := make([]huh.Option[string], len(entries))
	for i, e := range entries {
		label := e.Template.String()
		if e.Description != "" {
			label = fmt.Sprintf("%s (%s)", e.Template, e.Description)
		}
		options[i] = huh.NewOption(label, e.Template.String())
	}

	var selected string
	if err := runSelect("Which starter would you like to use?", options, &selected); err != nil {
		return "", wrapPromptErr(err)
	}
	return model.ParseTemplate(selected)
}

// inputProjectName runs the validated free-text name question.
// huh re-prompts on validation failure, so a returned value always
// satisfies model.ValidateProjectName.
func (c *Collector) inputProjectName(defaultName string) (string, error) {
	name := defaultName
	err := runInput("What is your project named?", "my-app", &name, model.ValidateProjectName)
	if err != nil {
		return "", wrapPromptErr(err)
	}
	return name, nil
}

// selectPackageManager runs the fixed-choice package-manager question.
func (c *Collector) selectPackageManager() (model.PackageManager, error) {
	managers := model.PackageManagers()
	options := make([]huh.Option[string], len(managers))
	for i, pm := range managers {
		options[i] = huh.NewOption(pm.String(), pm.String())
	}

	var selected string
	if err := runSelect("Which package manager should install dependencies?", options, &selected); err != nil {
		return "", wrapPromptErr(err)
	}
	return model.ParsePackageManager(selected)
}

// wrapPromptErr translates huh errors into the CLI error taxonomy.
// Ctrl-C surfaces as huh.ErrUserAborted and becomes a cancellation;
// anything else (e.g., no usable terminal) is an environment problem.
func wrapPromptErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return model.NewCLIError(model.KindCancelled, "scaffolding cancelled")
	}
	return model.WrapCLIError(model.KindEnvironment, "interactive prompt failed", err)
}
