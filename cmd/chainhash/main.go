package main

import (
	"context"

	"github.com/Blackdeer1524/chainhash/cmd/chainhash/app"
)

func main() {
	app.MustExecute(context.Background())
}
