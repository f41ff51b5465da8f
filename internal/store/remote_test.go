package store

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/depositodopitty/pit/internal/apiclient"
	"github.com/depositodopitty/pit/internal/models"
)

func TestRemoteMapsListAndErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/Client/get-all":
			_, _ = io.WriteString(w, `[{"id":7,"companyName":"Obra Fina","documentNumber":"12.345.678/0001-99"}]`)
		case "/User/create":
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"message":"E-mail já cadastrado"}`)
		default:
			w.WriteHeader(http.StatusUnauthorized)
		}
	}))
	defer srv.Close()
	set := NewRemoteSet(apiclient.New(srv.URL))
	ctx := context.Background()

	customers, err := set.Customers.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(customers) != 1 || customers[0].ID != 7 || !customers[0].IsActive {
		t.Fatalf("unexpected customers %+v", customers)
	}

	_, err = set.Users.Create(ctx, models.User{Email: "pitty@pit.com"})
	if !errors.Is(err, ErrConflict) || apiclient.MessageOf(err) != "E-mail já cadastrado" {
		t.Fatalf("want conflict with message, got %v", err)
	}

	if _, err := set.Products.List(ctx); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if err := set.Budgets.DeleteItem(ctx, 3); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
	if _, err := set.Suppliers.Update(ctx, models.Supplier{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("update without id: want ErrNotFound, got %v", err)
	}
}
