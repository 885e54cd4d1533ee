// Command layout prints where every monolith and cat plane starts, without
// opening a window.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"text/tabwriter"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/leterax/catwalk/pkg/scene"
)

func main() {
	seed := flag.Int64("seed", 1, "Seed for the cat texture draw")
	flag.Parse()

	textures := make([]scene.TextureID, len(scene.CatTextures))
	for i := range textures {
		textures[i] = scene.TextureID(i)
	}
	pairs := scene.Populate(scene.DefaultLayout(), rand.New(rand.NewSource(*seed)), textures)

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tside\twall\tplane\tyaw\ttexture")
	for _, p := range pairs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.0f\t%s\n",
			p.Index, p.Side,
			formatVec(p.Wall.Position), formatVec(p.Plane.Position),
			mgl32.RadToDeg(p.Plane.Yaw()),
			scene.CatTextures[p.Plane.Material.Texture])
	}
	w.Flush()
}

func formatVec(v mgl32.Vec3) string {
	return fmt.Sprintf("(%.1f, %.1f, %.1f)", v.X(), v.Y(), v.Z())
}
