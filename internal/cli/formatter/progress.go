package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCompletion renders a bar like [████░░░░] 2/5 done for a day's
// task list. The bar is green once every task is done, yellow past half,
// dim otherwise.
func RenderCompletion(done, total, width int) string {
	if total <= 0 {
		return Dim("no tasks")
	}
	if done < 0 {
		done = 0
	}
	if done > total {
		done = total
	}
	if width < 2 {
		width = 2
	}

	filled := done * width / total
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleDim
	switch {
	case done == total:
		style = StyleGreen
	case done*2 >= total:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %d/%d done", style.Render(bar), done, total)
}
