package cli

import (
	"encoding/json"
	"fmt"

	"github.com/filippov-code/jsonconsole/internal/config"
	"github.com/filippov-code/jsonconsole/internal/models"
	"gopkg.in/yaml.v3"
)

// render prints employees in the configured format. When single is set the
// first employee is printed as an object instead of a list.
func render(o *IO, format string, employees []*models.Employee, single bool) error {
	var v any = employees
	if single && len(employees) > 0 {
		v = employees[0]
	}

	switch format {
	case config.OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		o.Println(string(data))
	case config.OutputYAML:
		data, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		o.Printf("%s", data)
	default:
		for _, e := range employees {
			o.Println(e)
			if single {
				break
			}
		}
	}
	return nil
}
