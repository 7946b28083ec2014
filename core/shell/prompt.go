package shell

import (
	"os"
	"strings"
)

// ExpandPrompt fills in a prompt template:
//
//	\u  user name
//	\h  host name
//	\w  working directory, with the home directory shown as ~
//	\$  # for root, $ otherwise
//
// An empty template yields DefaultPrompt.
func ExpandPrompt(template string) string {
	prompt := template
	if prompt == "" {
		prompt = DefaultPrompt
	}
	if !strings.Contains(prompt, `\`) {
		return prompt
	}

	prompt = strings.ReplaceAll(prompt, `\u`, os.Getenv("USER"))
	if strings.Contains(prompt, `\h`) {
		host, _ := os.Hostname()
		prompt = strings.ReplaceAll(prompt, `\h`, host)
	}

	if strings.Contains(prompt, `\w`) {
		pwd, _ := os.Getwd()
		home, _ := os.UserHomeDir()
		if home != "" && (pwd == home || strings.HasPrefix(pwd, home+"/")) {
			pwd = "~" + strings.TrimPrefix(pwd, home)
		}
		prompt = strings.ReplaceAll(prompt, `\w`, pwd)
	}

	if os.Getuid() == 0 {
		prompt = strings.ReplaceAll(prompt, `\$`, "#")
	} else {
		prompt = strings.ReplaceAll(prompt, `\$`, "$")
	}

	return prompt
}
