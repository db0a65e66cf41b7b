// Package output renders query results for the terminal. The renderer only
// formats values the engine already computed; it never aggregates anything
// itself.
package output

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"stockroom/pkg/domain/entities"
	"stockroom/pkg/query"
)

// Renderer writes formatted results to a terminal writer.
type Renderer struct {
	w      io.Writer
	styles Styles
}

// NewRenderer creates a renderer writing to w.
func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w, styles: DefaultStyles()}
}

func (r *Renderer) printf(format string, args ...any) {
	fmt.Fprintf(r.w, format, args...)
}

func (r *Renderer) println(line string) {
	fmt.Fprintln(r.w, line)
}

// Greeting prints the session opening line.
func (r *Renderer) Greeting(name string) {
	r.println(r.styles.Heading.Render(fmt.Sprintf("Hello, %s", name)))
}

// Menu prints the main operation menu.
func (r *Renderer) Menu() {
	r.println("What would you like to do?")
	r.println(r.styles.Menu.Render("1. List items by warehouse"))
	r.println(r.styles.Menu.Render("2. Search an item and place an order"))
	r.println(r.styles.Menu.Render("3. Browse by category"))
	r.println(r.styles.Menu.Render("4. Quit"))
}

// InvalidChoice prints the banner for an unrecognized menu choice.
func (r *Renderer) InvalidChoice(choice string) {
	r.banner(fmt.Sprintf("%s is not a valid operation", choice))
}

func (r *Renderer) banner(message string) {
	r.println(strings.Repeat("*", 50))
	r.println(r.styles.Warning.Render(message))
	r.println(strings.Repeat("*", 50))
}

// WarehouseHeading prints the section heading for one warehouse listing.
func (r *Renderer) WarehouseHeading(key entities.WarehouseKey) {
	r.println("")
	r.println(r.styles.Heading.Render(fmt.Sprintf("Items in warehouse %s:", key)))
	r.println("")
}

// Page prints one listing page, numbering items from the page's running
// ordinal.
func (r *Renderer) Page(p query.Page) {
	for i, item := range p.Items {
		r.printf("%d. %s\n", p.FirstOrdinal+i+1, item.DisplayName())
	}
}

// PagePrompt formats the continuation prompt shown after a non-final page.
func (r *Renderer) PagePrompt(p query.Page) string {
	return fmt.Sprintf(
		`Displaying %d-%d of %d products in warehouse %s. Press enter for next page or "q" for next warehouse: `,
		p.Start+1, p.End, p.Total, p.Warehouse)
}

// WarehouseTotals prints the full per-warehouse item counts after a listing
// walk.
func (r *Renderer) WarehouseTotals(res query.ListResult) {
	r.println("")
	for _, key := range res.Warehouses {
		r.println(r.styles.Total.Render(
			fmt.Sprintf("Total items in warehouse %s: %d", key, res.Totals[key])))
	}
	r.println("")
}

// SearchMatches prints the per-warehouse matches, availability counts and
// the overall total for one search.
func (r *Renderer) SearchMatches(res *query.SearchResult) {
	label := capitalize(res.Query)
	for _, key := range res.Warehouses {
		for _, age := range res.Ages[key] {
			r.printf("- %s (in stock for %d days) in Warehouse %s\n", label, age, key)
		}
		r.printf("Maximum availability: %d in Warehouse %s\n", res.PerLocation[key], key)
	}
	r.println(r.styles.Total.Render(fmt.Sprintf("Total available amount is: %d", res.Total)))
	if res.Value.IsPositive() {
		r.printf("Total stock value: %s\n", res.Value.StringFixed(2))
	}
}

// NotInStock prints the terminal no-match report.
func (r *Renderer) NotInStock() {
	r.println("Amount available: 0")
	r.println("Location: Not in stock")
	r.println("")
}

// CategoryMenu prints the numbered category selector.
func (r *Renderer) CategoryMenu(ci *query.CategoryIndex) {
	for _, code := range ci.Codes() {
		entry, _ := ci.Resolve(code)
		r.printf("%d. %s (%d)\n", code, entry.Category, entry.Count)
	}
}

// BrowseWarehouse prints one warehouse's grouped view of a browsed category.
func (r *Renderer) BrowseWarehouse(res *query.BrowseResult, key entities.WarehouseKey) {
	names := make([]string, 0, len(res.PerLocation[key]))
	for name := range res.PerLocation[key] {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		count := res.PerLocation[key][name]
		for i := 0; i < count; i++ {
			r.printf("%s, Warehouse %s\n", name, key)
		}
	}
	r.printf("- Total %d amount of %s in warehouse %s\n", res.PerLocationTotal[key], res.Category, key)
}

// BrowseGrandTotal prints the overall count of the browsed category.
func (r *Renderer) BrowseGrandTotal(res *query.BrowseResult) {
	r.println(r.styles.Total.Render(
		fmt.Sprintf("Total %d amount of %s across all warehouses", res.GrandTotal, res.Category)))
}

// MaxOffer prints the banner shown when a request exceeds availability.
func (r *Renderer) MaxOffer(available int) {
	r.banner(fmt.Sprintf(
		"There are not this many available. The maximum amount that can be ordered is %d", available))
}

// AccessDenied prints the failed-authorization notice.
func (r *Renderer) AccessDenied() {
	r.println(r.styles.Warning.Render("Access denied: unknown credentials"))
}

// OrderResolution prints the terminal outcome of an order validation.
func (r *Renderer) OrderResolution(res entities.OrderResolution) {
	switch res.Outcome {
	case entities.OrderPlaced, entities.OrderPlacedMax:
		r.printf("%d %s have been ordered\n", res.Quantity, res.ItemName)
		if res.Value.IsPositive() {
			r.printf("Order value: %s\n", res.Value.StringFixed(2))
		}
	case entities.OrderDeclined:
		if res.Reason == query.ReasonNothingOrdered {
			r.println("Nothing has been ordered")
		}
	}
	r.println("")
}

// Farewell prints the visit-closing line.
func (r *Renderer) Farewell(name string) {
	r.println(r.styles.Farewell.Render(fmt.Sprintf("Thank you for your visit, %s!", name)))
}

// SessionSummary prints the action log recap on quit.
func (r *Renderer) SessionSummary(session *query.Session) {
	actions := session.Actions()
	if len(actions) == 0 {
		return
	}
	r.println("")
	r.println(r.styles.Heading.Render("In this session you have:"))
	for _, action := range actions {
		if action.Detail != "" {
			r.printf("%d. %s %s\n", action.Seq, action.Type, action.Detail)
		} else {
			r.printf("%d. %s\n", action.Seq, action.Type)
		}
	}
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
