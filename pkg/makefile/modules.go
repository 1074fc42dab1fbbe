package makefile

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/devmk/pkg/types"
)

// SerializeModules renders the modules fragment: radio files and one FAKE
// module per symlink, guarded by the target device.
func SerializeModules(mk types.ModulesMakefile) string {
	blocks := []string{
		Header,
		"LOCAL_PATH := $(call my-dir)",
		fmt.Sprintf("ifeq ($(TARGET_DEVICE),%s)", mk.Device),
	}

	if mk.RadioFiles != nil {
		calls := make([]string, 0, len(mk.RadioFiles))
		for _, img := range mk.RadioFiles {
			calls = append(calls, fmt.Sprintf("$(call add-radio-file,%s)", img))
		}
		blocks = append(blocks, strings.Join(calls, "\n"))
	}

	for _, link := range mk.Symlinks {
		blocks = append(blocks, symlinkModule(link, mk.Vendor))
	}

	blocks = append(blocks, "endif")
	return joinBlocks(blocks)
}

// symlinkModule renders the rule of a module whose only output is a symlink.
// Recipe lines must be indented with tabs.
func symlinkModule(link types.Symlink, vendor string) string {
	var b strings.Builder

	fmt.Fprintln(&b, "include $(CLEAR_VARS)")
	fmt.Fprintln(&b, "LOCAL_MODULE :=", link.ModuleName)
	fmt.Fprintln(&b, "LOCAL_MODULE_CLASS := FAKE")
	fmt.Fprintln(&b, "LOCAL_MODULE_TAGS := optional")
	fmt.Fprintln(&b, "LOCAL_MODULE_OWNER :=", vendor)
	fmt.Fprintln(&b, "include $(BUILD_SYSTEM)/base_rules.mk")
	fmt.Fprintln(&b, "$(LOCAL_BUILT_MODULE): TARGET :=", link.TargetPath)
	fmt.Fprintln(&b, "$(LOCAL_BUILT_MODULE): SYMLINK :=", PartitionPath(link.LinkPartition, link.LinkSubpath))
	fmt.Fprint(&b, `$(LOCAL_BUILT_MODULE):
	$(hide) mkdir -p $(dir $@)
	$(hide) mkdir -p $(dir $(SYMLINK))
	$(hide) rm -rf $@
	$(hide) rm -rf $(SYMLINK)
	$(hide) ln -sf $(TARGET) $(SYMLINK)
	$(hide) touch $@`)

	return b.String()
}
