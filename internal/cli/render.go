package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-orders-admin/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true).Width(10)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	numCellStyle = cellStyle.Align(lipgloss.Right)
)

func statusStyle(s models.OrderStatus) lipgloss.Style {
	switch s {
	case models.OrderStatusPaid:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case models.OrderStatusCanceled:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	}
}

// newTable returns a bordered table; columns listed in numeric are right aligned.
func newTable(headers []string, numeric ...int) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			for _, n := range numeric {
				if n == col {
					return numCellStyle
				}
			}
			return cellStyle
		})
}

func formatAmount(amount int64, currency string) string {
	if currency == "" {
		return strconv.FormatInt(amount, 10)
	}
	return strconv.FormatInt(amount, 10) + " " + currency
}

func renderOrderList(w io.Writer, orders []models.OrderSummary) {
	if len(orders) == 0 {
		fmt.Fprintln(w, faintStyle.Render("No orders found."))
		return
	}

	t := newTable([]string{"ID", "STATUS", "TOTAL", "CREATED"}, 2)
	for _, o := range orders {
		t.Row(o.ID, string(o.Status), formatAmount(o.TotalAmount, o.Currency), o.CreatedAt)
	}
	fmt.Fprintln(w, t.String())
}

func renderOrder(w io.Writer, o models.Order) {
	fmt.Fprintln(w, titleStyle.Render("Order "+o.ID))
	fmt.Fprintln(w, labelStyle.Render("Status"), statusStyle(o.Status).Render(string(o.Status)))
	fmt.Fprintln(w, labelStyle.Render("Total"), formatAmount(o.TotalAmount, o.Currency))
	if o.CreatedAt != "" {
		fmt.Fprintln(w, labelStyle.Render("Created"), o.CreatedAt)
	}

	if len(o.Items) == 0 {
		return
	}
	t := newTable([]string{"SKU", "QTY", "UNIT PRICE", "LINE TOTAL"}, 1, 2, 3)
	for _, it := range o.Items {
		lineTotal := it.LineTotal
		if lineTotal == 0 {
			lineTotal = int64(it.Qty) * it.UnitPrice
		}
		t.Row(it.SKU, strconv.Itoa(it.Qty), formatAmount(it.UnitPrice, o.Currency), formatAmount(lineTotal, o.Currency))
	}
	fmt.Fprintln(w, t.String())
}

func renderSkuStats(w io.Writer, stats []models.SkuStat) {
	if len(stats) == 0 {
		fmt.Fprintln(w, faintStyle.Render("No statistics for the selected window."))
		return
	}

	t := newTable([]string{"SKU", "WINDOW START", "WINDOW END", "TOTAL QTY"}, 3)
	for _, s := range stats {
		t.Row(s.SKU, s.WindowStart, s.WindowEnd, strconv.FormatInt(s.TotalQty, 10))
	}
	fmt.Fprintln(w, t.String())
}

func renderStatusLine(w io.Writer, msg string) {
	fmt.Fprintln(w, okStyle.Render("✓"), msg)
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
