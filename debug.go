package zcursor

// joinBreadcrumb renders a leaf-to-root parent chain (collected by the
// parent.breadcrumb chain of calls) into the "Array > Object > Document"
// form used in stack-discipline panic messages.
func joinBreadcrumb(trail []string) string {
	out := ""
	for i, s := range trail {
		if i > 0 {
			out += " > "
		}
		out += s
	}
	return out
}
