package export

import (
	"fmt"
	"io"

	"standeal-backend/internal/domain"

	"github.com/xuri/excelize/v2"
)

const quoteSheet = "Cotații"

var quoteHeader = []interface{}{
	"ID", "Data (UTC)", "Client", "Email", "Telefon", "De la", "Către",
	"Tipul mărfii", "Greutate (kg)", "Dimensiuni", "Transport", "Urgență", "Informații adiționale",
}

// WriteQuotes renders quotes into a single-sheet XLSX workbook
func WriteQuotes(w io.Writer, quotes []domain.TransportQuote) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", quoteSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(quoteSheet, "A1", &quoteHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, q := range quotes {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		var weight interface{}
		if q.CargoWeight != nil {
			weight = *q.CargoWeight
		}
		row := []interface{}{
			q.ID, q.Timestamp.UTC().Format("2006-01-02 15:04"), q.ClientName, q.Email, q.Phone,
			q.PickupLocation, q.DeliveryLocation, q.CargoType, weight, q.CargoDimensions,
			string(q.TransportType), string(q.Urgency), q.AdditionalInfo,
		}
		if err := f.SetSheetRow(quoteSheet, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(quoteSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
