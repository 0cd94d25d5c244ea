// Package pdf renders invoices as PDF documents
package pdf

import (
	"fmt"

	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/solobooks/solobooks/internal/db/models"
)

// RenderInvoice renders an invoice with its line items as a PDF and
// returns the document bytes. LineItems must be preloaded.
func RenderInvoice(invoice *models.Invoice, project *models.Project, client *models.Client) ([]byte, error) {
	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 10, 20)

	m.RegisterHeader(func() {
		m.Row(12, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("Invoice %s", invoice.InvoiceNumber), props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  16,
				})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("Issued %s", invoice.IssueDate.Format("2006-01-02")), props.Text{
					Top:   2,
					Align: consts.Center,
					Size:  10,
				})
			})
		})
	})

	m.Row(8, func() {
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Client: %s", client.Name), props.Text{Size: 10})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Project: %s", project.Title), props.Text{Size: 10})
		})
	})
	if invoice.DueDate != nil {
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(fmt.Sprintf("Due %s", invoice.DueDate.Format("2006-01-02")), props.Text{Size: 10})
			})
		})
	}
	m.Row(5, func() {})

	headers := []string{"Description", "Quantity", "Unit Price", "Amount"}
	rows := make([][]string, 0, len(invoice.LineItems))
	for _, item := range invoice.LineItems {
		rows = append(rows, []string{
			item.Description,
			fmt.Sprintf("%.2f", item.Quantity),
			item.UnitPrice.StringFixed(2),
			item.Amount().StringFixed(2),
		})
	}

	m.TableList(headers, rows, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      10,
			GridSizes: []uint{6, 2, 2, 2},
		},
		ContentProp: props.TableListContent{
			Size:      9,
			GridSizes: []uint{6, 2, 2, 2},
		},
		Line: true,
	})

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text(fmt.Sprintf("Total: %s", invoice.TotalAmount().StringFixed(2)), props.Text{
				Top:   8,
				Style: consts.Bold,
				Align: consts.Right,
				Size:  12,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("failed to render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
