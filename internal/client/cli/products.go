package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/salesdesk/internal/client/models"
)

func (a *App) productsCmd(ctx context.Context, _ []string) error {
	list, err := a.products.List(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No products.")
		return nil
	}

	rows := [][]any{{"ID", "NAME", "PRICE", "QTY", "DESCRIPTION"}}
	for _, p := range list {
		rows = append(rows, []any{p.ID, p.Name, money(p.Price), p.Quantity, p.Description})
	}
	table(a.out, rows)
	return nil
}

// promptProduct fills in from user input; empty answers keep cur's values.
func (a *App) promptProduct(cur models.ProductInput) (models.ProductInput, error) {
	in := cur

	name, err := getSimpleText(a.reader, fmt.Sprintf("Name [%s]", cur.Name), a.out)
	if err != nil {
		return in, err
	}
	if name != "" {
		in.Name = name
	}

	desc, err := getSimpleText(a.reader, fmt.Sprintf("Description [%s]", cur.Description), a.out)
	if err != nil {
		return in, err
	}
	if desc != "" {
		in.Description = desc
	}

	price, err := getSimpleText(a.reader, fmt.Sprintf("Price [%s]", cur.Price.StringFixed(2)), a.out)
	if err != nil {
		return in, err
	}
	if price != "" {
		if in.Price, err = parsePrice(price); err != nil {
			return in, err
		}
	}

	qty, err := getSimpleText(a.reader, fmt.Sprintf("Quantity [%d]", cur.Quantity), a.out)
	if err != nil {
		return in, err
	}
	if qty != "" {
		if in.Quantity, err = parseQuantity(qty); err != nil {
			return in, err
		}
	}

	return in, in.Validate()
}

func (a *App) productAddCmd(ctx context.Context, _ []string) error {
	in, err := a.promptProduct(models.ProductInput{})
	if err != nil {
		return err
	}
	p, err := a.products.Create(ctx, in)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product #%d created.\n", p.ID)
	return nil
}

func (a *App) productEditCmd(ctx context.Context, args []string) error {
	raw, err := a.requireArg(args, "Product id")
	if err != nil {
		return err
	}
	id, err := parseID(raw)
	if err != nil {
		return err
	}

	cur, err := a.products.Get(ctx, id)
	if err != nil {
		return err
	}
	in, err := a.promptProduct(cur.Input())
	if err != nil {
		return err
	}
	if _, err := a.products.Update(ctx, id, in); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product #%d updated.\n", id)
	return nil
}

func (a *App) productDeleteCmd(ctx context.Context, args []string) error {
	raw, err := a.requireArg(args, "Product id")
	if err != nil {
		return err
	}
	id, err := parseID(raw)
	if err != nil {
		return err
	}

	ok, err := a.confirm(fmt.Sprintf("Delete product #%d?", id))
	if err != nil || !ok {
		return err
	}
	if err := a.products.Delete(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Product #%d deleted.\n", id)
	return nil
}
