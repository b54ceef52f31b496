package ui

// RenderDialPanel wraps rasterized dial content with a styled border.
// Rasterization happens in the app to keep ui free of draw commands.
func RenderDialPanel(width, height int, content string) string {
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
