package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/pkg/profile"

	app "github.com/huskytech/huskytech2/app"
	glfwcontext "github.com/huskytech/huskytech2/glfwcontext"
	options "github.com/huskytech/huskytech2/options"
	renderer "github.com/huskytech/huskytech2/renderer"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func run() int {
	opts, fs, err := options.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *opts.Help {
		fmt.Println("huskyTech2")
		fs.PrintDefaults()
		return 0
	}

	if *opts.CPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	a := app.New(
		&glfwcontext.Platform{Options: opts},
		&renderer.Loader{},
		renderer.NewRenderer(),
		app.WithSwapInterval(*opts.SwapInterval),
	)

	if err := a.Run(); err != nil {
		log.Printf("%v", err)
		return app.ExitCode(err)
	}
	return 0
}

func main() {
	os.Exit(run())
}
