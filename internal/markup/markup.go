// Package markup renders the control and a host page as HTML.
package markup

import (
	"fmt"
	"io"
	"sort"
	"strings"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/Haocen/dark-mode-toggle/internal/scheme"
	"github.com/Haocen/dark-mode-toggle/internal/stylesheet"
	"github.com/Haocen/dark-mode-toggle/internal/view"
)

// Prefix is prepended to every style hook custom property.
const Prefix = "--dark-mode-toggle-"

// HookNames lists the style hooks hosts may set.
var HookNames = []string{
	"active-mode-background-color",
	"background-color",
	"checkbox-icon",
	"color",
	"dark-icon",
	"icon-filter",
	"icon-size",
	"label-font",
	"legend-font",
	"light-icon",
	"remember-filter",
	"remember-font",
	"remember-icon-checked",
	"remember-icon-unchecked",
	"system-icon",
}

// ValidHook reports whether name is a known style hook, with or without
// the custom property prefix.
func ValidHook(name string) bool {
	name = strings.TrimPrefix(name, Prefix)
	for _, h := range HookNames {
		if h == name {
			return true
		}
	}
	return false
}

// Hooks maps style hook names to CSS values.
type Hooks map[string]string

// declarations returns the hooks as a sorted inline style. Unknown hooks
// and empty values are dropped.
func (h Hooks) declarations() string {
	names := make([]string, 0, len(h))
	for name, v := range h {
		if ValidHook(name) && strings.TrimSpace(v) != "" {
			names = append(names, strings.TrimPrefix(name, Prefix))
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString(" ")
		}
		v, ok := h[name]
		if !ok {
			v = h[Prefix+name]
		}
		fmt.Fprintf(&b, "%s%s: %s;", Prefix, name, strings.TrimSpace(v))
	}
	return b.String()
}

// Control renders one instance of the control from its views. Inputs of
// hidden representations are still rendered with their computed state.
func Control(id string, v view.Views, asideVisible bool, hooks Hooks) Node {
	pair := id + "-mode"
	group := id + "-three-way"

	return Form(
		ID(id),
		Class("dark-mode-toggle"),
		Attr("part", "form"),
		If(len(hooks) > 0, StyleAttr(hooks.declarations())),
		FieldSet(
			Attr("part", "fieldset"),
			Legend(Attr("part", "legend"), Text(v.Legend)),

			radio(id+"-light", pair, string(scheme.Light), v.Radios.Light, v.Radios.Hidden, "lightRadio"),
			label(id+"-light", "lightLabel", v.LightLabel, v.Radios.Hidden),
			radio(id+"-dark", pair, string(scheme.Dark), v.Radios.Dark, v.Radios.Hidden, "darkRadio"),
			label(id+"-dark", "darkLabel", v.DarkLabel, v.Radios.Hidden),

			Input(
				ID(id+"-toggle"),
				Type("checkbox"),
				Attr("part", "toggleCheckbox"),
				Aria("label", v.Toggle.AriaLabel),
				Data("icon", string(v.Toggle.Icon)),
				If(v.Toggle.Checked, Checked()),
				If(v.Toggle.Hidden, Attr("hidden")),
			),
			label(id+"-toggle", "toggleLabel", v.Toggle.Text, v.Toggle.Hidden),

			Input(
				ID(id+"-slider"),
				Type("checkbox"),
				Attr("part", "sliderCheckbox"),
				If(v.Slider.Checked, Checked()),
				If(v.Slider.Hidden, Attr("hidden")),
			),
			label(id+"-slider", "sliderLabel", "", v.Slider.Hidden),

			radio(id+"-three-way-light", group, string(scheme.OptionLight), v.ThreeWay.Light, v.ThreeWay.Hidden, "lightThreeWayRadio"),
			label(id+"-three-way-light", "lightThreeWayLabel", "", v.ThreeWay.Hidden),
			radio(id+"-three-way-system", group, string(scheme.OptionSystem), v.ThreeWay.System, v.ThreeWay.Hidden, "systemThreeWayRadio"),
			label(id+"-three-way-system", "systemThreeWayLabel", "", v.ThreeWay.Hidden),
			radio(id+"-three-way-dark", group, string(scheme.OptionDark), v.ThreeWay.Dark, v.ThreeWay.Hidden, "darkThreeWayRadio"),
			label(id+"-three-way-dark", "darkThreeWayLabel", "", v.ThreeWay.Hidden),

			Aside(
				Attr("part", "aside"),
				If(asideVisible, Class("visible")),
				Input(
					ID(id+"-permanent"),
					Type("checkbox"),
					Attr("part", "permanentCheckbox"),
					If(v.Remember.Checked, Checked()),
				),
				label(id+"-permanent", "permanentLabel", v.Remember.Label, false),
			),
		),
	)
}

func radio(id, name, value string, checked, hidden bool, part string) Node {
	return Input(
		ID(id),
		Type("radio"),
		Name(name),
		Value(value),
		Attr("part", part),
		If(checked, Checked()),
		If(hidden, Attr("hidden")),
	)
}

func label(forID, part, text string, hidden bool) Node {
	return Label(
		For(forID),
		Attr("part", part),
		If(hidden, Attr("hidden")),
		Text(text),
	)
}

// Document renders a full page with the host's stylesheet links, the
// color-scheme meta and body.
func Document(title, colorScheme string, links []*stylesheet.Link, body ...Node) Node {
	head := []Node{
		Meta(Charset("utf-8")),
		Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
		Meta(Name("color-scheme"), Content(colorScheme)),
		TitleEl(Text(title)),
	}
	for _, l := range links {
		head = append(head, Link(
			Rel("stylesheet"),
			Href(l.Href),
			Attr("media", l.Media),
			If(l.Disabled, Disabled()),
		))
	}

	return Doctype(HTML(
		Lang("en"),
		Head(Group(head)),
		Body(Group(body)),
	))
}

// Write renders n to w.
func Write(w io.Writer, n Node) error {
	if err := n.Render(w); err != nil {
		return fmt.Errorf("render markup: %w", err)
	}
	return nil
}
