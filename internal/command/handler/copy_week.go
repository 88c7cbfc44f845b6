package command

import (
	"context"

	"shiftboard/internal/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type CopyWeekHandler struct {
	logger       *zap.Logger
	boardService *service.BoardService
}

func NewCopyWeekHandler(
	logger *zap.Logger,
	boardService *service.BoardService,
) *CopyWeekHandler {
	return &CopyWeekHandler{
		logger:       logger,
		boardService: boardService,
	}
}

// Run 將 --from 所在週的排班複製到下一週
func (handler *CopyWeekHandler) Run(cmd *cobra.Command, args []string) {
	ctx := context.Background()

	from, _ := cmd.Flags().GetString("from")
	if _, err := handler.boardService.LoadWeek(ctx, from); err != nil {
		handler.logger.Error("load week failed", zap.String("from", from), zap.Error(err))
		cmd.PrintErrln("load week failed:", err.Error())
		return
	}

	result, err := handler.boardService.CopyWeek(ctx)
	if err != nil {
		handler.logger.Error("copy week failed", zap.String("from", from), zap.Error(err))
		cmd.PrintErrln("copy week failed:", err.Error())
		return
	}

	cmd.Printf("created=%d skipped=%d failed=%d\n",
		len(result.Created), len(result.Skipped), len(result.Failed))
	for _, failure := range result.Failed {
		cmd.PrintErrln("failed:", failure.Error)
	}
}
