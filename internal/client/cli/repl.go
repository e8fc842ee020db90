package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Staff(ctx context.Context, search string) error
	StaffAdd(ctx context.Context) error
	StaffEdit(ctx context.Context, id string) error
	StaffDelete(ctx context.Context, id string) error
	Departments(ctx context.Context) error
	DepartmentAdd(ctx context.Context) error
	DepartmentEdit(ctx context.Context, id string) error
	DepartmentDelete(ctx context.Context, id string) error
	Salaries(ctx context.Context) error
	SalaryAdd(ctx context.Context) error
	SalaryDelete(ctx context.Context, id string) error
	Export(ctx context.Context, path string) error
	APIURL(ctx context.Context, arg string) error
	Stats(ctx context.Context) error
}

const (
	guestHelp = "Available commands: login, register, status, api-url [url|reset], stats, exit"
	userHelp  = "Available commands: dashboard, staff [search], staff-add, staff-edit <id>, staff-del <id>, " +
		"depts, dept-add, dept-edit <id>, dept-del <id>, salaries, salary-add, salary-del <id>, " +
		"export <file.xlsx>, status, api-url [url|reset], stats, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
//
// The first word of a line is the command; the rest are its arguments. The
// prompt, help and usage lines go through printLine, the same sink the
// commands write to. The loop exits on EOF, on "exit" or "quit", or when ctx
// is done. Handlers print their own errors, so returned errors are ignored
// here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, printLine func(args ...any)) {
	for {
		if ctx.Err() != nil {
			return
		}

		printLine(fmt.Sprintf("hotelctl (%s)> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]
		rest := strings.Join(args, " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printLine(userHelp)
			} else {
				printLine(guestHelp)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "staff":
			_ = a.Staff(ctx, rest)

		case "staff-add":
			_ = a.StaffAdd(ctx)

		case "staff-edit":
			if id, ok := oneArg(cmd, args, printLine); ok {
				_ = a.StaffEdit(ctx, id)
			}

		case "staff-del":
			if id, ok := oneArg(cmd, args, printLine); ok {
				_ = a.StaffDelete(ctx, id)
			}

		case "depts":
			_ = a.Departments(ctx)

		case "dept-add":
			_ = a.DepartmentAdd(ctx)

		case "dept-edit":
			if id, ok := oneArg(cmd, args, printLine); ok {
				_ = a.DepartmentEdit(ctx, id)
			}

		case "dept-del":
			if id, ok := oneArg(cmd, args, printLine); ok {
				_ = a.DepartmentDelete(ctx, id)
			}

		case "salaries":
			_ = a.Salaries(ctx)

		case "salary-add":
			_ = a.SalaryAdd(ctx)

		case "salary-del":
			if id, ok := oneArg(cmd, args, printLine); ok {
				_ = a.SalaryDelete(ctx, id)
			}

		case "export":
			if path, ok := oneArg(cmd, args, printLine); ok {
				_ = a.Export(ctx, path)
			}

		case "api-url":
			_ = a.APIURL(ctx, rest)

		case "stats":
			_ = a.Stats(ctx)

		case "exit", "quit":
			printLine("Bye!")
			return

		default:
			printLine("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}

var argNames = map[string]string{"export": "<file.xlsx>"}

func oneArg(cmd string, args []string, printLine func(args ...any)) (string, bool) {
	if len(args) != 1 {
		name, ok := argNames[cmd]
		if !ok {
			name = "<id>"
		}
		printLine(fmt.Sprintf("Usage: %s %s", cmd, name))
		return "", false
	}
	return args[0], true
}
