package response

import (
	"context"
	"fmt"
	"log"
	"strings"

	"token-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

// sensitiveHeaders are never copied into bug reports.
var sensitiveHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

func sendDiscordMessageAsync(d discord.IDiscord, message string) {
	if d == nil || message == "" {
		return
	}
	go func() {
		if err := d.ReportBug(context.Background(), message); err != nil {
			log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
		}
	}()
}

// buildInternalServerErrorDataForReportBug builds a formatted error report.
// Request bodies may carry tokens, so only the route and safe headers are included.
func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString(reportTitle + "\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.Path))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
	sb.WriteString(reportRule + "\n")

	if len(c.Request.Header) > 0 {
		sb.WriteString("Headers :\n")
		for key, values := range c.Request.Header {
			if sensitiveHeaders[key] {
				continue
			}
			sb.WriteString(fmt.Sprintf("    %s: %s\n", key, strings.Join(values, ", ")))
		}
		sb.WriteString(reportRule + "\n")
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))

	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}

	sb.WriteString(strings.Repeat("=", len(reportTitle)) + "\n")
	return sb.String()
}
