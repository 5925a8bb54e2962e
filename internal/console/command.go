package console

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is one console instruction.
type Command struct {
	Name        string
	Usage       string
	Description string
	Run         func(c *Console, args []string) error
}

// Commands lists every console instruction, in help order.
var Commands = []Command{
	{
		Name:        "help",
		Description: "Displays available commands",
		Run: func(c *Console, args []string) error {
			c.printHelp()
			return nil
		},
	},
	{
		Name:        "field",
		Description: "Displays the game field",
		Run: func(c *Console, args []string) error {
			c.printField()
			return nil
		},
	},
	{
		Name:        "hand",
		Description: "Displays your hand",
		Run: func(c *Console, args []string) error {
			c.printHand()
			return nil
		},
	},
	{
		Name:        "log",
		Description: "Displays the match events so far",
		Run: func(c *Console, args []string) error {
			c.printLog()
			return nil
		},
	},
	{
		Name:        "play",
		Usage:       "<card#> [row]",
		Description: "Plays a card from your hand; a special may target another row",
		Run: func(c *Console, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return fmt.Errorf("usage: play <card#> [row]")
			}
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("card number %q is not a number", args[0])
			}
			row := 0
			if len(args) == 2 {
				row, err = strconv.Atoi(args[1])
				if err != nil {
					return fmt.Errorf("row %q is not a number", args[1])
				}
			}
			return c.playCard(index, row)
		},
	},
	{
		Name:        "pass",
		Description: "Passes for the rest of the round",
		Run: func(c *Console, args []string) error {
			return c.pass()
		},
	},
	{
		Name:        "exit",
		Description: "Exits the game",
		Run: func(c *Console, args []string) error {
			c.quit = true
			return nil
		},
	},
}

// ForInput returns the command the input line starts with.
func ForInput(input string) (Command, bool) {
	input = strings.TrimSpace(input)
	for _, cmd := range Commands {
		if strings.HasPrefix(input, cmd.Name) {
			return cmd, true
		}
	}
	return Command{}, false
}

// ExtractArguments returns the whitespace-separated words after the command.
func ExtractArguments(input string) []string {
	fields := strings.Fields(input)
	if len(fields) <= 1 {
		return nil
	}
	return fields[1:]
}
