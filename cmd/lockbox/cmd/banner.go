package cmd

import (
	"fmt"
)

const banner = `
  _                _    _
 | |    ___   ___| | _| |__   _____  __
 | |   / _ \ / __| |/ / '_ \ / _ \ \/ /
 | |__| (_) | (__|   <| |_) | (_) >  <
 |_____\___/ \___|_|\_\_.__/ \___/_/\_\

`

func printBanner() {
	fmt.Printf("\x1b[34m%s\x1b[0m", banner)
	fmt.Printf("\x1b[32m  Passkey-Protected Storage - Version %s\x1b[0m\n\n", Version)
}
