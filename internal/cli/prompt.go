package cli

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
)

// promptDataFile asks for the edge-list file name.
func promptDataFile() (string, error) {
	var name string
	in := &survey.Input{
		Message: "Enter the TSP data file name:",
		Help:    `One edge per line: "cityA cityB cost".`,
	}
	if err := survey.AskOne(in, &name, survey.WithValidator(survey.Required)); err != nil {
		return "", fmt.Errorf("prompt data file: %w", err)
	}

	return strings.TrimSpace(name), nil
}
