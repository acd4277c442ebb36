package cli

import (
	"github.com/filippov-code/jsonconsole/internal/jsondb"
	"github.com/filippov-code/jsonconsole/internal/models"
)

// employeeStore is the store handle passed to command handlers.
type employeeStore = *jsondb.Store[*models.Employee]

// cmdEnv is what a command needs to run.
type cmdEnv struct {
	io     *IO
	store  employeeStore
	output string
}

// command is a CLI command taking "Key:Value" parameters.
type command struct {
	name  string
	usage string
	short string

	// noStore commands run without opening the store file.
	noStore bool
	exec    func(e *cmdEnv, p params) error
}

var commands = []*command{
	{
		name:  "add",
		usage: "-add FirstName:<name> LastName:<name> Salary:<decimal>",
		short: "Adds a new employee.",
		exec:  cmdAdd,
	},
	{
		name:  "update",
		usage: "-update Id:<int> [FirstName:<name>] [LastName:<name>] [Salary:<decimal>]",
		short: "Updates the given fields of the employee with the specified Id.",
		exec:  cmdUpdate,
	},
	{
		name:  "get",
		usage: "-get Id:<int>",
		short: "Outputs the employee with the specified Id.",
		exec:  cmdGet,
	},
	{
		name:  "delete",
		usage: "-delete Id:<int>",
		short: "Deletes the employee with the specified Id.",
		exec:  cmdDelete,
	},
	{
		name:  "getall",
		usage: "-getall",
		short: "Outputs all employees.",
		exec:  cmdGetAll,
	},
	{
		name:    "schema",
		usage:   "-schema",
		short:   "Outputs the JSON Schema of the store file.",
		noStore: true,
		exec:    cmdSchema,
	},
	// help is dispatched by Run since printing usage walks this table.
	{
		name:    "help",
		usage:   "-help",
		short:   "Shows this help.",
		noStore: true,
	},
}

// lookupCommand accepts "-add", "--add" and "add".
func lookupCommand(token string) *command {
	name := token
	for i := 0; i < 2; i++ {
		if len(name) > 0 && name[0] == '-' {
			name = name[1:]
		}
	}
	if name == "h" {
		name = "help"
	}
	for _, c := range commands {
		if c.name == name {
			return c
		}
	}
	return nil
}

func cmdAdd(e *cmdEnv, p params) error {
	if len(p) != 3 {
		return parameterCount()
	}
	if err := p.require(keyFirstName, keyLastName, keySalary); err != nil {
		return err
	}
	salary, _, err := p.salary()
	if err != nil {
		return err
	}

	employee := &models.Employee{
		FirstName:     p[keyFirstName],
		LastName:      p[keyLastName],
		SalaryPerHour: salary,
	}
	if r := e.store.Add(employee); !r.Success {
		return r.Err
	}
	if r := e.store.Save(); !r.Success {
		return r.Err
	}
	return render(e.io, e.output, []*models.Employee{employee}, true)
}

func cmdUpdate(e *cmdEnv, p params) error {
	id, err := p.id()
	if err != nil {
		return err
	}
	r := e.store.Get(id)
	if !r.Success {
		return r.Err
	}
	employee, _ := r.First()
	if len(p) < 2 {
		return nothingToChange()
	}

	if v, ok := p[keyFirstName]; ok {
		employee.FirstName = v
	}
	if v, ok := p[keyLastName]; ok {
		employee.LastName = v
	}
	salary, ok, err := p.salary()
	if err != nil {
		return err
	}
	if ok {
		employee.SalaryPerHour = salary
	}

	if r := e.store.Update(employee); !r.Success {
		return r.Err
	}
	if r := e.store.Save(); !r.Success {
		return r.Err
	}
	return render(e.io, e.output, []*models.Employee{employee}, true)
}

func cmdGet(e *cmdEnv, p params) error {
	if len(p) != 1 {
		return parameterCount()
	}
	id, err := p.id()
	if err != nil {
		return err
	}
	r := e.store.Get(id)
	if !r.Success {
		return r.Err
	}
	return render(e.io, e.output, r.Items, true)
}

func cmdDelete(e *cmdEnv, p params) error {
	if len(p) != 1 {
		return parameterCount()
	}
	id, err := p.id()
	if err != nil {
		return err
	}
	if r := e.store.Delete(id); !r.Success {
		return r.Err
	}
	if r := e.store.Save(); !r.Success {
		return r.Err
	}
	return nil
}

func cmdGetAll(e *cmdEnv, p params) error {
	if len(p) > 0 {
		return parameterCount()
	}
	r := e.store.GetAll()
	if !r.Success {
		return r.Err
	}
	return render(e.io, e.output, r.Items, false)
}

func cmdSchema(e *cmdEnv, p params) error {
	if len(p) > 0 {
		return parameterCount()
	}
	data, err := jsondb.Schema[*models.Employee]()
	if err != nil {
		return err
	}
	e.io.Println(string(data))
	return nil
}
