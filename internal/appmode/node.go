// Package appmode runs the search-node until the app context is cancelled or serving fails
package appmode

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/UnendingLoop/MiniGrep/internal/model"
	"github.com/UnendingLoop/MiniGrep/internal/processor"
	"github.com/UnendingLoop/MiniGrep/internal/transport"
)

const shutdownTimeout = 5 * time.Second

// RunNode blocks until ctx is done, then shuts the server down gracefully.
// A bind or serve failure is returned as an error.
func RunNode(ctx context.Context, ni *model.NodeInit) error {
	srv := transport.NewNodeServer(ni.Address, processor.Processor{})

	// занимаем адрес сразу, чтобы ошибка бинда вернулась вызывающему
	ln, err := net.Listen("tcp", ni.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", ni.Address, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("Search-node running on %s", ln.Addr())
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("search-node %q stopped: %w", ni.Address, err)
	case <-ctx.Done():
	}

	log.Println("Server gracefully stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown search-node %q correctly: %w", ni.Address, err)
	}

	log.Printf("Search-node %q server is closed.", ni.Address)
	return nil
}
