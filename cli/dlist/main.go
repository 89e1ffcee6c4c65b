package main

import (
	"github.com/sirupsen/logrus"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		logrus.Fatal(err)
	}
}
