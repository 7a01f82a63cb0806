package thimble

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/danpasecinic/thimble/internal/reflect"
)

type StateInfo struct {
	Overrides []OverrideInfo
	Labels    []LabelInfo
}

type OverrideInfo struct {
	Key        string
	Queued     int
	Persistent bool
}

type LabelInfo struct {
	Label    string
	TypeName string
}

// State returns a snapshot of the override tables and the label registry,
// sorted for stable output.
func (f *Factory) State() StateInfo {
	keys := f.registry.Keys()
	sort.Strings(keys)

	overrides := make([]OverrideInfo, 0, len(keys))
	for _, key := range keys {
		overrides = append(
			overrides, OverrideInfo{
				Key:        key,
				Queued:     f.registry.QueueLen(key),
				Persistent: f.registry.HasPersistent(key),
			},
		)
	}

	byLabel := f.registry.AllLabels()
	labelNames := make([]string, 0, len(byLabel))
	for label := range byLabel {
		labelNames = append(labelNames, label)
	}
	sort.Strings(labelNames)

	labels := make([]LabelInfo, 0, len(labelNames))
	for _, label := range labelNames {
		labels = append(
			labels, LabelInfo{
				Label:    label,
				TypeName: reflect.DynamicTypeName(byLabel[label]),
			},
		)
	}

	return StateInfo{Overrides: overrides, Labels: labels}
}

func (f *Factory) PrintState() {
	f.FprintState(os.Stdout)
}

func (f *Factory) FprintState(w io.Writer) {
	info := f.State()

	if len(info.Overrides) == 0 && len(info.Labels) == 0 {
		_, _ = fmt.Fprintln(w, "(empty factory)")
		return
	}

	for _, o := range info.Overrides {
		parts := make([]string, 0, 2)
		if o.Queued > 0 {
			parts = append(parts, fmt.Sprintf("queued=%d", o.Queued))
		}
		if o.Persistent {
			parts = append(parts, "persistent")
		}
		_, _ = fmt.Fprintf(w, "%s ← %s\n", o.Key, strings.Join(parts, ", "))
	}

	for _, l := range info.Labels {
		_, _ = fmt.Fprintf(w, "%s = %s\n", l.Label, l.TypeName)
	}
}

func (f *Factory) SprintState() string {
	var sb strings.Builder
	f.FprintState(&sb)
	return sb.String()
}
