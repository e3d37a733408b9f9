package main

import "github.com/zhulik/starmatch/internal/application"

func main() {
	application.RunClient()
}
