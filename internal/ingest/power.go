package ingest

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/j-veylop/macwrap/internal/logger"
	"github.com/j-veylop/macwrap/internal/models"
)

// sleepsPerReboot approximates reboots from the sleep count; the power log
// does not record them directly.
const sleepsPerReboot = 10

// PowerEvents counts the year's sleep and wake entries in the power
// management log.
func PowerEvents(ctx context.Context, r Runner, year int, timeout time.Duration) (models.PowerEventSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := r.Output(ctx, "pmset", "-g", "log")
	if err != nil {
		return models.PowerEventSummary{}, fmt.Errorf("failed to read power log: %w", err)
	}
	summary, err := countPowerEvents(out, year)
	if err != nil {
		logger.Warn("Power log truncated", "sleeps", summary.Sleeps, "error", err)
	}
	return summary, nil
}

// countPowerEvents tallies the year's sleep and wake lines. On a scan error
// the counts cover the lines read so far.
func countPowerEvents(out []byte, year int) (models.PowerEventSummary, error) {
	yearStr := strconv.Itoa(year)
	var summary models.PowerEventSummary

	scanner := bufio.NewScanner(bytes.NewReader(out))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, yearStr) {
			continue
		}
		if strings.Contains(line, "Sleep") {
			summary.Sleeps++
		}
		if strings.Contains(line, "Wake") {
			summary.Wakes++
		}
	}

	summary.Reboots = summary.Sleeps / sleepsPerReboot
	return summary, scanner.Err()
}
