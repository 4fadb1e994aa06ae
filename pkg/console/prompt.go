package console

import "github.com/AlecAivazis/survey/v2"

func askSelect(message string, options []string, def string) (string, error) {
	p := &survey.Select{Message: message, Options: options}
	if def != "" {
		p.Default = def
	}
	var answer string
	if err := survey.AskOne(p, &answer); err != nil {
		return "", err
	}
	return answer, nil
}

func askInput(message, def string, out *string) error {
	return survey.AskOne(&survey.Input{Message: message, Default: def}, out)
}

func confirm(message string) (bool, error) {
	ok := false
	err := survey.AskOne(&survey.Confirm{Message: message, Default: false}, &ok)
	return ok, err
}
