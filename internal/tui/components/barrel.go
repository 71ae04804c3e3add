package components

// RenderBurnBarrel renders the delete target. It lights up while a card hovers over it.
func RenderBurnBarrel(active bool) string {
	if active {
		return BarrelActiveStyle.Render("🔥\n\nrelease to burn")
	}
	return BarrelStyle.Render("🗑\n\ndrag here\nto delete")
}
