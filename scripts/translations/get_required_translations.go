package main

import (
	"fmt"
	"strings"

	"github.com/jesseduffield/tscat/pkg/i18n"
)

func main() {
	fmt.Print(getOutstandingTranslations())
}

func getOutstandingTranslations() string {
	outstanding := i18n.OutstandingTranslations()

	var output strings.Builder
	for _, languageCode := range i18n.SortedLanguages(outstanding) {
		output.WriteString(languageCode + ":\n")
		for _, field := range outstanding[languageCode] {
			output.WriteString(field + "\n")
		}
		output.WriteString("\n")
	}
	return output.String()
}
