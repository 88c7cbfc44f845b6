package command

import (
	commandHandler "shiftboard/internal/command/handler"

	"github.com/google/wire"
	"github.com/spf13/cobra"
)

var ProviderSet = wire.NewSet(NewCommand, commandHandler.NewCopyWeekHandler)

type Command struct {
	copyWeekCommandHandler *commandHandler.CopyWeekHandler
}

// NewCommand .
func NewCommand(
	copyWeekCommandHandler *commandHandler.CopyWeekHandler,
) *Command {
	return &Command{
		copyWeekCommandHandler: copyWeekCommandHandler,
	}
}

func Register(rootCmd *cobra.Command, newCmd func() (*Command, func(), error)) {
	copyWeekCmd := &cobra.Command{
		Use:   "copy-week",
		Short: "複製指定週的排班到下一週",
		Run: func(cmd *cobra.Command, args []string) {
			command, cleanup, err := newCmd()
			if err != nil {
				panic(err)
			}
			defer cleanup()

			command.copyWeekCommandHandler.Run(cmd, args)
		},
	}
	copyWeekCmd.Flags().String("from", "", "來源週內任一天 (yyyy-mm-dd)，留空取今天")

	rootCmd.AddCommand(copyWeekCmd)
}
