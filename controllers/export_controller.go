package controllers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/syed-reza98/Sharothee-Wedding-sub000/config"
	"github.com/syed-reza98/Sharothee-Wedding-sub000/models"
)

var exportHeader = []string{"Name", "Email", "Token", "Country", "Phone", "Event", "Response", "Attendees", "Dietary", "Comments"}

type exportRow struct {
	guest models.Guest
	rsvp  *models.RSVP
}

func collectExportRows() ([]exportRow, error) {
	var guests []models.Guest
	if err := config.DB.
		Preload("RSVPs").
		Preload("RSVPs.Event").
		Order("name ASC").
		Find(&guests).Error; err != nil {
		return nil, err
	}

	rows := []exportRow{}
	for i := range guests {
		if len(guests[i].RSVPs) == 0 {
			rows = append(rows, exportRow{guest: guests[i]})
			continue
		}
		for j := range guests[i].RSVPs {
			rows = append(rows, exportRow{guest: guests[i], rsvp: &guests[i].RSVPs[j]})
		}
	}
	return rows, nil
}

func (r exportRow) values() []string {
	g := r.guest
	vals := []string{g.Name, g.Email, g.Token, deref(g.Country), deref(g.Phone), "", "", "", "", ""}
	if r.rsvp != nil {
		vals[5] = r.rsvp.Event.Title
		vals[6] = string(r.rsvp.Response)
		vals[7] = strconv.Itoa(r.rsvp.Attendees)
		vals[8] = deref(r.rsvp.DietaryPreferences)
		vals[9] = deref(r.rsvp.Comments)
	}
	return vals
}

// GET /api/admin/export/guests?format=csv|xlsx
//
// One row per (guest, RSVP); guests with no RSVP still get a row.
func ExportGuests(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")
	if format != "csv" && format != "xlsx" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or xlsx"})
		return
	}

	rows, err := collectExportRows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load guests"})
		return
	}

	filename := fmt.Sprintf("guests-%s.%s", uuid.NewString()[:8], format)

	if format == "csv" {
		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		_ = w.Write(exportHeader)
		for _, r := range rows {
			_ = w.Write(r.values())
		}
		w.Flush()
		if err := w.Error(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write CSV"})
			return
		}
		c.Header("Content-Disposition", "attachment; filename="+filename)
		c.Data(http.StatusOK, "text/csv", buf.Bytes())
		return
	}

	f := excelize.NewFile()
	defer f.Close()
	const sheet = "Guests"
	f.SetSheetName("Sheet1", sheet)
	for col, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for i, r := range rows {
		for col, v := range r.values() {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheet, cell, v)
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write workbook"})
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
