package main

import "github.com/Musicweekchops/admitio-frontend-v3/cmd/admitioctl/cmd"

func main() {
	cmd.Execute()
}
