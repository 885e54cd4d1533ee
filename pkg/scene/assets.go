package scene

// Asset paths relative to the asset root. A plane's TextureID indexes
// CatTextures when the renderer loads them in order.
var (
	CatTextures  = []string{"cats/cat1.png", "cats/cat2.png", "cats/cat3.png", "cats/cat4.png"}
	FloorTexture = "grass.jpg"
)
