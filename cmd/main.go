package main

import (
	"github.com/saborarte/ordering/internal/app"
	"github.com/saborarte/ordering/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
