package main

import (
	"os"

	"github.com/urfave/cli"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "go-pathtracer"
	app.Usage = "render builtin scenes using path tracing"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
		cli.StringFlag{
			Name:  "log-level",
			Usage: "log level (debug, info, notice, warning, error), overrides -v and -vv",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a builtin scene to an image file",
			Description: `
Build the selected scene, trace every pixel on a pool of workers and write the
result as PNG or PPM depending on the output file extension.

Width, samples per pixel and depth default to the values recommended by the
scene and can be overridden.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "spheres",
					Usage: "scene id, see the scenes command",
				},
				cli.StringFlag{
					Name:  "out, o",
					Usage: "output file (.png or .ppm), defaults to output/<scene>/render_<timestamp>.png",
				},
				cli.IntFlag{
					Name:  "width",
					Usage: "image width in pixels, 0 keeps the scene value",
				},
				cli.IntFlag{
					Name:  "spp",
					Usage: "samples per pixel, 0 keeps the scene value",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: -1,
					Usage: "maximum bounce depth, -1 keeps the scene value",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "render goroutines, 0 uses one per CPU",
				},
				cli.Int64Flag{
					Name:  "seed",
					Usage: "seed for scene generation and sampling",
				},
				cli.StringFlag{
					Name:  "assets",
					Value: "assets",
					Usage: "directory holding texture images",
				},
				cli.BoolFlag{
					Name:  "stats",
					Usage: "print a render statistics table",
				},
				cli.BoolFlag{
					Name:  "ppm-binary",
					Usage: "write .ppm output as binary P6 instead of ASCII P3",
				},
			},
			Action: renderScene,
		},
		{
			Name:   "scenes",
			Usage:  "list builtin scenes",
			Action: listScenes,
		},
	}

	return app
}
