package cli

import (
	"fmt"
	"io"
	"runtime"
)

const bannerArt = `
  __  __         _      _   ___ ___    ___ _    ___
 |  \/  |___  __| |__  /_\ | _ \_ _|  / __| |  |_ _|
 | |\/| / _ \/ _| / / / _ \|  _/| |  | (__| |__ | |
 |_|  |_\___/\__|_\_\/_/ \_\_| |___|  \___|____|___|
`

func printBanner(w io.Writer) {
	fmt.Fprint(w, bannerArt)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  Version: %s\n", Version)
	fmt.Fprintf(w, "  Go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Run 'mockapi --help' for usage.")
}
