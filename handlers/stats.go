package handlers

import (
	"fmt"
	"net/http"
	"time"

	"justice_lab_go/models"
	"justice_lab_go/services"

	"github.com/labstack/echo/v4"
)

// GetStatsHandler returns the aggregate stats across finished runs
func GetStatsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, runStore.ReadStats())
}

// ResetStatsHandler wipes runs, stats and the active-run pointer
func ResetStatsHandler(c echo.Context) error {
	if err := runStore.ClearAllRuns(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear runs")
	}
	if err := runStore.WriteStats(models.NewStats()); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to reset stats")
	}
	if err := runStore.ClearActiveRunID(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear active run")
	}
	return c.NoContent(http.StatusNoContent)
}

// ExportJournalHandler streams the run journal as an Excel workbook
func ExportJournalHandler(c echo.Context) error {
	runs := runStore.ReadRuns()
	stats := runStore.ReadStats()

	buf, err := services.ExportRunsJournal(runs, stats)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to build journal export")
	}

	filename := fmt.Sprintf("justicelab_journal_%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
