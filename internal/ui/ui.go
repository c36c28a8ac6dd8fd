package ui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/huh"

	"github.com/DanielRosa74/algo-visualizer/internal/algo"
	"github.com/DanielRosa74/algo-visualizer/internal/config"
)

// ConfigureWorkflow walks the user through picking an algorithm and its
// input, starting from base for defaults. A non-empty preselected name
// skips the algorithm menu. A nil config with a nil error means the
// user backed out.
func ConfigureWorkflow(reg *algo.Registry, base *config.Config, preselected string) (*config.Config, error) {
	name := preselected
	if name == "" {
		var err error
		name, err = selectAlgorithm(reg, base.Algorithm)
		if err != nil || name == "" {
			return nil, err
		}
	}

	alg, err := reg.Get(name)
	if err != nil {
		return nil, err
	}

	values, err := promptValues(config.FormatValues(base.Floats()))
	if err != nil || values == nil {
		return nil, err
	}

	target := math.NaN()
	if alg.NeedsTarget || alg.TakesTarget {
		target, err = promptTarget(alg.NeedsTarget, config.FormatTarget(base.TargetFloat()))
		if err != nil {
			return nil, err
		}
		if alg.NeedsTarget && math.IsNaN(target) {
			return nil, nil // aborted the required prompt
		}
	}

	order := base.Order
	if alg.TakesOrder {
		order, err = selectOrder(base.Order)
		if err != nil || order == "" {
			return nil, err
		}
	}

	cfg := *base
	cfg.Algorithm = name
	cfg.Values = config.ToValues(values)
	cfg.Target = config.Value(target)
	cfg.Order = order
	return &cfg, nil
}

// selectAlgorithm shows every registered algorithm grouped by family
func selectAlgorithm(reg *algo.Registry, current string) (string, error) {
	var options []huh.Option[string]
	for _, family := range algo.Families {
		for _, a := range reg.ByFamily(family) {
			label := fmt.Sprintf("%-14s %s", a.Name, a.Description)
			options = append(options, huh.NewOption(label, a.Name))
		}
	}

	selected := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an algorithm").
				Options(options...).
				Value(&selected).
				Height(15),
		),
	)

	err := form.Run()
	if err != nil {
		if err == huh.ErrUserAborted {
			return "", nil
		}
		return "", err
	}

	return selected, nil
}

// promptValues asks for the working array
func promptValues(def string) ([]float64, error) {
	raw := def

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Values").
				Description("Comma-separated numbers. Use _ for an empty tree slot.").
				Placeholder("5,3,8,1").
				Value(&raw).
				Validate(func(s string) error {
					_, err := config.ParseValues(s)
					return err
				}),
		),
	)

	err := form.Run()
	if err != nil {
		if err == huh.ErrUserAborted {
			return nil, nil
		}
		return nil, err
	}

	return config.ParseValues(raw)
}

// promptTarget asks for the search or traversal target
func promptTarget(required bool, def string) (float64, error) {
	raw := def
	desc := "Leave blank to visit every node."
	if required {
		desc = "The number to search for."
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Target").
				Description(desc).
				Value(&raw).
				Validate(func(s string) error {
					t, err := config.ParseTarget(s)
					if err != nil {
						return err
					}
					if required && math.IsNaN(t) {
						return fmt.Errorf("a target is required")
					}
					return nil
				}),
		),
	)

	err := form.Run()
	if err != nil {
		if err == huh.ErrUserAborted {
			return math.NaN(), nil
		}
		return math.NaN(), err
	}

	return config.ParseTarget(raw)
}

// selectOrder picks the visit order for depth-first walks
func selectOrder(current string) (string, error) {
	selected := current
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Visit order").
				Options(
					huh.NewOption("Pre-order (node, left, right)", "preorder"),
					huh.NewOption("In-order (left, node, right)", "inorder"),
					huh.NewOption("Post-order (left, right, node)", "postorder"),
				).
				Value(&selected),
		),
	)

	err := form.Run()
	if err != nil {
		if err == huh.ErrUserAborted {
			return "", nil
		}
		return "", err
	}

	return selected, nil
}
