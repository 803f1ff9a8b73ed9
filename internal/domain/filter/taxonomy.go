package filter

// Category is one heading of the filter card with its selectable options.
type Category struct {
	Type    string   `json:"filterType"`
	Options []string `json:"options"`
}

var taxonomy = []Category{
	{
		Type:    "Location",
		Options: []string{"Công Nhân", "Kĩ Sư Xây Dựng", "Tài xế", "Nhân Viên Bán Hàng", "Kiến Trúc Sư", "Lập Trình Viên", "Kĩ Sư Phần Mềm", "Quản Lý Dữ Liệu"},
	},
	{
		Type:    "Industry",
		Options: []string{"Xây Dựng", " Công Nghệ ", "Nhà Hàng", "Khách Sạn", "Văn Phòng", "Kĩ Thuật Phần Mềm"},
	},
	{
		Type:    "Salary",
		Options: []string{"0-40k", "42-1lakh", "1lakh to 5lakh"},
	},
}

// Taxonomy returns a copy of the fixed filter categories in display order.
func Taxonomy() []Category {
	out := make([]Category, 0, len(taxonomy))
	for _, c := range taxonomy {
		opts := make([]string, len(c.Options))
		copy(opts, c.Options)
		out = append(out, Category{Type: c.Type, Options: opts})
	}
	return out
}

// IsOption reports whether value is exactly one of the taxonomy options.
// Options are matched verbatim, surrounding spaces included.
func IsOption(value string) bool {
	for _, c := range taxonomy {
		for _, o := range c.Options {
			if o == value {
				return true
			}
		}
	}
	return false
}
