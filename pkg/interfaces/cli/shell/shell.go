// Package shell implements the interactive prompt loop. It owns every
// input/output concern — prompting, input validation, retry policy — and
// delegates all computation to the query engine.
package shell

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"stockroom/pkg/config"
	"stockroom/pkg/domain/repositories"
	"stockroom/pkg/interfaces/cli/output"
	"stockroom/pkg/query"
)

// Shell runs one interactive operator session.
type Shell struct {
	scanner  *bufio.Scanner
	out      io.Writer
	cfg      config.Config
	log      *zap.Logger
	renderer *output.Renderer

	inventory repositories.InventoryRepository
	personnel repositories.PersonnelRepository

	pager      *query.Pager
	searcher   *query.Searcher
	authorizer *query.Authorizer

	session *query.Session
	eof     bool
}

// New creates a shell reading operator input from in and writing to out.
func New(in io.Reader, out io.Writer, cfg config.Config, log *zap.Logger,
	inventory repositories.InventoryRepository, personnel repositories.PersonnelRepository) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		scanner:    bufio.NewScanner(in),
		out:        out,
		cfg:        cfg,
		log:        log,
		renderer:   output.NewRenderer(out),
		inventory:  inventory,
		personnel:  personnel,
		pager:      query.NewPager(cfg.ItemsPerPage),
		searcher:   query.NewSearcher(nil),
		authorizer: query.NewAuthorizer(cfg.MaxPersonnelDepth),
	}
}

// Run drives the session: greet, loop over the menu until quit or EOF.
func (s *Shell) Run() error {
	name := s.promptLine("What is your user name?: ")
	if s.eof {
		return nil
	}
	if name == "" {
		name = "guest"
	}

	s.session = query.NewSession(name)
	s.log.Info("session started",
		zap.String("session_id", s.session.ID),
		zap.String("operator", name))

	s.renderer.Greeting(name)

	for !s.eof {
		s.renderer.Menu()
		choice := s.promptLine("Type the number of the operation(1\\2\\3\\4): ")

		switch choice {
		case "1":
			if err := s.runList(); err != nil {
				return err
			}
		case "2":
			if err := s.runSearch(); err != nil {
				return err
			}
		case "3":
			if err := s.runBrowse(); err != nil {
				return err
			}
		case "4":
			s.renderer.SessionSummary(s.session)
			s.renderer.Farewell(name)
			s.log.Info("session ended",
				zap.String("session_id", s.session.ID),
				zap.Int("actions", s.session.Len()))
			return nil
		default:
			if s.eof {
				return nil
			}
			s.renderer.InvalidChoice(choice)
		}
	}
	return nil
}

func (s *Shell) loadIndex() (*query.WarehouseIndex, error) {
	records, err := s.inventory.GetAllStock()
	if err != nil {
		return nil, fmt.Errorf("failed to load stock records: %w", err)
	}
	return query.BuildWarehouseIndex(records), nil
}

func (s *Shell) runList() error {
	ix, err := s.loadIndex()
	if err != nil {
		return err
	}

	result := s.pager.ListAll(ix, nil, func(p query.Page) query.PageDecision {
		if p.Number == 0 {
			s.renderer.WarehouseHeading(p.Warehouse)
		}
		s.renderer.Page(p)
		if p.Last {
			return query.PageContinue
		}
		answer := s.promptLine(s.renderer.PagePrompt(p))
		if answer == "q" {
			return query.PageSkipWarehouse
		}
		return query.PageContinue
	})

	s.renderer.WarehouseTotals(result)
	s.renderer.Farewell(s.session.Operator)
	s.session.Record(query.ActionListed, fmt.Sprintf("%d warehouses", len(result.Warehouses)))
	return nil
}

func (s *Shell) runSearch() error {
	ix, err := s.loadIndex()
	if err != nil {
		return err
	}

	itemName := s.promptLine("What is the name of the item?: ")
	if s.eof {
		return nil
	}

	result, err := s.searcher.Search(itemName, ix)
	if err != nil {
		// Corrupt records are a data fault; report and abort the search,
		// not the whole session.
		s.log.Error("search failed", zap.String("query", itemName), zap.Error(err))
		fmt.Fprintf(s.out, "Cannot search right now: %v\n", err)
		return nil
	}

	s.renderer.SearchMatches(result)
	s.session.Record(query.ActionSearched, itemName)

	if !result.InStock() {
		s.renderer.NotInStock()
		s.renderer.Farewell(s.session.Operator)
		return nil
	}

	s.runOrder(itemName, result)
	return nil
}

// runOrder drives the order flow for a successful search: confirmation,
// credential gate, quantity validation.
func (s *Shell) runOrder(itemName string, found *query.SearchResult) {
	if !s.promptYesNo("Would you like to order this item?(y/n): ") {
		s.renderer.Farewell(s.session.Operator)
		return
	}

	if !s.authorizeOperator() {
		s.renderer.Farewell(s.session.Operator)
		return
	}

	validator := query.NewOrderValidator(itemName, found.Total)
	if found.Total > 0 && found.Value.IsPositive() {
		// Treat the searched item as uniformly priced at the average of its
		// matches; mixed-price stock still gets a sensible order value.
		validator.WithUnitPrice(found.Value.Div(decimal.NewFromInt(int64(found.Total))))
	}

	quantity := s.promptInt("How many would you like?: ")
	if s.eof {
		return
	}

	state, err := validator.RequestQuantity(quantity)
	if err != nil {
		s.log.Error("order validation failed", zap.Error(err))
		return
	}

	if state == query.OfferMax {
		s.renderer.MaxOffer(validator.Available())
		accept := s.promptYesNo("Would you like to order the maximum available?(y/n): ")
		if _, err := validator.AcceptMax(accept); err != nil {
			s.log.Error("order validation failed", zap.Error(err))
			return
		}
	}

	resolution, ok := validator.Resolution()
	if !ok {
		return
	}

	s.renderer.OrderResolution(resolution)
	s.renderer.Farewell(s.session.Operator)
	s.session.Record(query.ActionOrdered,
		fmt.Sprintf("%s: %s x%d", resolution.Outcome, resolution.ItemName, resolution.Quantity))
	s.log.Info("order resolved",
		zap.String("item", resolution.ItemName),
		zap.String("outcome", resolution.Outcome.String()),
		zap.Int("quantity", resolution.Quantity))
}

// authorizeOperator prompts for credentials and checks them against the
// personnel hierarchy, allowing retries until the operator gives up.
func (s *Shell) authorizeOperator() bool {
	forest, err := s.personnel.GetPersonnel()
	if err != nil {
		s.log.Error("failed to load personnel records", zap.Error(err))
		return false
	}

	for !s.eof {
		userName := s.promptLine("Authorization required. User name: ")
		password := s.promptLine("Password: ")
		if s.eof {
			return false
		}

		authorized := s.authorizer.Authorize(forest, userName, password)
		s.session.Record(query.ActionAuthorized, fmt.Sprintf("%s: %t", userName, authorized))
		if authorized {
			return true
		}

		s.renderer.AccessDenied()
		s.log.Warn("authorization failed", zap.String("user_name", userName))
		if !s.promptYesNo("Try again?(y/n): ") {
			return false
		}
	}
	return false
}

func (s *Shell) runBrowse() error {
	records, err := s.inventory.GetAllStock()
	if err != nil {
		return fmt.Errorf("failed to load stock records: %w", err)
	}
	ix := query.BuildWarehouseIndex(records)
	ci := query.BuildCategoryIndex(records, s.cfg.CategoryCodeStart)

	s.renderer.CategoryMenu(ci)

	var result *query.BrowseResult
	for !s.eof {
		code := s.promptInt("Type the number of the category to browse: ")
		if s.eof {
			return nil
		}
		result = query.Browse(code, ci, ix)
		if result.Found() {
			break
		}
		s.renderer.InvalidChoice(strconv.Itoa(code))
	}
	if s.eof || result == nil {
		return nil
	}

	for i, key := range result.Warehouses {
		s.renderer.BrowseWarehouse(result, key)
		if i < len(result.Warehouses)-1 {
			s.promptLine("Please press enter for next warehouse: ")
		}
	}
	s.renderer.BrowseGrandTotal(result)
	s.renderer.Farewell(s.session.Operator)
	s.session.Record(query.ActionBrowsed, result.Category)
	return nil
}

// promptLine prints prompt and reads one input line. On EOF it sets the
// shell's eof flag and returns an empty string.
func (s *Shell) promptLine(prompt string) string {
	fmt.Fprint(s.out, prompt)
	if !s.scanner.Scan() {
		s.eof = true
		return ""
	}
	return strings.TrimSpace(s.scanner.Text())
}

// promptInt re-prompts until the operator provides a parseable integer.
func (s *Shell) promptInt(prompt string) int {
	for !s.eof {
		raw := s.promptLine(prompt)
		if s.eof {
			break
		}
		value, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Fprintln(s.out, "Please enter integer.")
			continue
		}
		return value
	}
	return 0
}

// promptYesNo re-prompts until the operator answers y or n.
func (s *Shell) promptYesNo(prompt string) bool {
	for !s.eof {
		answer := strings.ToLower(s.promptLine(prompt))
		if s.eof {
			break
		}
		switch answer {
		case "y":
			return true
		case "n":
			return false
		default:
			fmt.Fprintf(s.out, "%s is not a valid operation. please try again.\n", answer)
		}
	}
	return false
}
