package dlist

const Version = "0.1.0"
