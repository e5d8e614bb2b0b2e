package query

import (
	"sort"

	"github.com/example/bookshop/internal/infrastructure/store"
	"github.com/example/bookshop/internal/projection"
	"github.com/example/bookshop/internal/readmodel"
)

type Handler struct {
	readStore store.ReadStoreInterface
}

func NewHandler(readStore store.ReadStoreInterface) *Handler {
	return &Handler{readStore: readStore}
}

// BookSales returns per-book sales summaries, best sellers first.
func (h *Handler) BookSales() []readmodel.BookSalesReadModel {
	items := h.readStore.GetAll(projection.CollectionBookSales)

	out := make([]readmodel.BookSalesReadModel, 0, len(items))
	for _, item := range items {
		if m, ok := item.(*readmodel.BookSalesReadModel); ok {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnitsSold != out[j].UnitsSold {
			return out[i].UnitsSold > out[j].UnitsSold
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// TotalUnitsSold returns the number of units sold across all books.
func (h *Handler) TotalUnitsSold() int {
	total := 0
	for _, m := range h.BookSales() {
		total += m.UnitsSold
	}
	return total
}

// CartActivity returns per-book cart add counts, most added first.
func (h *Handler) CartActivity() []readmodel.CartActivityReadModel {
	items := h.readStore.GetAll(projection.CollectionCartActivity)

	out := make([]readmodel.CartActivityReadModel, 0, len(items))
	for _, item := range items {
		if m, ok := item.(*readmodel.CartActivityReadModel); ok {
			out = append(out, *m)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TimesAdded != out[j].TimesAdded {
			return out[i].TimesAdded > out[j].TimesAdded
		}
		return out[i].Title < out[j].Title
	})
	return out
}
