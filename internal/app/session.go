package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/uneclaire/internal/cart"
	"github.com/vladislavdragonenkov/uneclaire/internal/catalog"
	"github.com/vladislavdragonenkov/uneclaire/internal/checkout"
	"github.com/vladislavdragonenkov/uneclaire/internal/contact"
	"github.com/vladislavdragonenkov/uneclaire/internal/domain"
	"github.com/vladislavdragonenkov/uneclaire/internal/ledger"
	"github.com/vladislavdragonenkov/uneclaire/internal/rating"
	"github.com/vladislavdragonenkov/uneclaire/internal/render"
)

// session — консольная витрина: принимает команды пользователя и транслирует
// их в операции над корзиной, реестром заказов и виджетами.
type session struct {
	cart    *cart.Store
	ledger  *ledger.Ledger
	flow    *checkout.Flow
	catalog *catalog.Catalog
	contact *contact.Form
	rating  *rating.Widget
	out     io.Writer
	logger  *log.Entry
}

// run читает команды построчно до EOF, команды выхода или отмены контекста.
func (s *session) run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	s.printf("Welcome to Une Claire! Type 'help' for the list of commands.\n")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		s.printf("> ")
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read command: %w", err)
			}
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			s.printf("Thanks for visiting Une Claire!\n")
			return nil
		}

		s.handleCommand(scanner, line)
	}
}

func (s *session) handleCommand(scanner *bufio.Scanner, line string) {
	command, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "help":
		s.printHelp()
	case "shop":
		s.printProducts(s.catalog.Filter(categoryOrAll(arg), ""))
	case "search":
		s.printProducts(s.catalog.Filter(catalog.CategoryAll, arg))
	case "add":
		s.addToCart(arg)
	case "cart":
		s.printf("%s", render.CartView(s.cart.Snapshot()))
	case "qty":
		s.setQuantity(arg)
	case "remove":
		s.cart.Remove(arg)
	case "clear":
		s.cart.Clear()
	case "checkout":
		s.checkout(scanner)
	case "track":
		s.track(arg)
	case "contact":
		s.sendContactMessage(scanner)
	case "rate":
		s.rate(arg)
	case "rating":
		s.printf("%s  %s\n", s.rating.Stars(), s.rating.Result())
	default:
		s.printf("Unknown command %q. Type 'help' for the list of commands.\n", command)
	}
}

func (s *session) printHelp() {
	s.printf(`Commands:
  shop [category]       show products (categories: %s)
  search <term>         search products by name
  add <product>         add a product to the cart
  cart                  show the cart
  qty <n> <product>     set line quantity (0 removes the line)
  remove <product>      remove a line from the cart
  clear                 empty the cart
  checkout              place an order
  track <order id>      look up a placed order
  contact               send us a message
  rate <1-5>            rate the shop
  rating                show your rating
  quit                  leave the shop
`, strings.Join(s.catalog.Categories(), ", "))
}

func (s *session) printProducts(products []catalog.Product) {
	if len(products) == 0 {
		s.printf("No products match.\n")
		return
	}
	for _, p := range products {
		s.printf("%s — %s [%s]\n", p.Name, render.FormatMinor(p.PriceMinor), p.Category)
	}
}

// addToCart ищет товар на витрине и кладёт его в корзину. Цена передаётся
// строкой, как из data-атрибута карточки товара в исходном виджете.
func (s *session) addToCart(name string) {
	product, ok := s.catalog.Find(name)
	if !ok {
		s.printf("Product %q is not on the shelf. Try 'shop'.\n", name)
		return
	}
	price := strconv.FormatFloat(float64(product.PriceMinor)/100, 'f', 2, 64)
	if err := s.cart.Add(product.Name, price); err != nil {
		s.printf("Could not add %s: %v\n", product.Name, err)
		return
	}
	s.printf("%s added to cart!\n", product.Name)
}

func (s *session) setQuantity(arg string) {
	rawQuantity, name, ok := strings.Cut(arg, " ")
	if !ok {
		s.printf("Usage: qty <n> <product>\n")
		return
	}
	s.cart.SetQuantity(strings.TrimSpace(name), rawQuantity)
}

func (s *session) checkout(scanner *bufio.Scanner) {
	if s.cart.IsEmpty() {
		s.printf("Cannot checkout: your cart is empty.\n")
		return
	}

	s.printf("%s", render.CartView(s.cart.Snapshot()))
	name := s.prompt(scanner, "Name: ")
	address := s.prompt(scanner, "Address: ")
	payment := s.prompt(scanner, "Payment method (Card/COD/GCash): ")

	record, err := s.flow.Submit(name, address, payment)
	if err != nil {
		if domain.IsValidationFailure(err) {
			s.printf("Checkout failed: %v\n", err)
		} else {
			s.logger.WithError(err).Error("checkout failed")
			s.printf("Checkout failed, please try again.\n")
		}
		return
	}

	s.printf("%s", render.ThankYou(record))
}

func (s *session) track(rawID string) {
	if strings.TrimSpace(rawID) == "" {
		s.printf("Please enter a valid Order ID.\n")
		return
	}
	record, ok := s.ledger.Lookup(rawID)
	if !ok {
		s.printf("%s", render.OrderNotFound(domain.NormalizeOrderID(rawID)))
		return
	}
	s.printf("%s", render.OrderView(record))
}

func (s *session) sendContactMessage(scanner *bufio.Scanner) {
	name := s.prompt(scanner, "Your name: ")
	email := s.prompt(scanner, "Your email: ")
	message := s.prompt(scanner, "Message: ")

	if err := s.contact.Submit(name, email, message); err != nil {
		s.printf("Could not send: %v\n", err)
		return
	}
	s.printf("Sending...\n")
}

func (s *session) rate(arg string) {
	value, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		s.printf("Usage: rate <1-5>\n")
		return
	}
	s.rating.Rate(value)
	s.printf("%s  %s\n", s.rating.Stars(), s.rating.Result())
}

// prompt печатает приглашение и читает одну строку ввода.
func (s *session) prompt(scanner *bufio.Scanner, label string) string {
	s.printf("%s", label)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func (s *session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

func categoryOrAll(arg string) string {
	if arg == "" {
		return catalog.CategoryAll
	}
	return arg
}
