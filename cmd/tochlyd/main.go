/*
Copyright © 2024 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/tochlyapp/tochly-backend/cmd/tochlyd/cmd"

func main() {
	cmd.Execute()
}
