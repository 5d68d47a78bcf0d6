package debug

import (
	"fmt"
	"io"
	"os"
	"unsafe"

	"github.com/jpnorenam/cpuid-snap/cmd/cli/common"
	"github.com/jpnorenam/cpuid-snap/pkg/libcpuid"
	"github.com/spf13/cobra"
)

type layoutCommand struct {
	*common.Context
}

func LayoutCommand(ctx *common.Context) *cobra.Command {
	var cmd layoutCommand
	cmd.Context = ctx

	cobraCmd := &cobra.Command{
		Use:               "layout",
		Short:             "Print the sizes and offsets of the libcpuid records",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE:              cmd.run,
	}

	return cobraCmd
}

func (cmd *layoutCommand) run(_ *cobra.Command, _ []string) error {
	printLayout(os.Stdout)
	return nil
}

func printLayout(w io.Writer) {
	var raw libcpuid.RawData
	var data libcpuid.IDRecord

	fmt.Fprintf(w, "cpu_raw_data_t: %d bytes\n", unsafe.Sizeof(raw))
	fmt.Fprintf(w, "  basic_cpuid  %4d\n", unsafe.Offsetof(raw.BasicCPUID))
	fmt.Fprintf(w, "  ext_cpuid    %4d\n", unsafe.Offsetof(raw.ExtCPUID))
	fmt.Fprintf(w, "  intel_fn4    %4d\n", unsafe.Offsetof(raw.IntelFn4))
	fmt.Fprintf(w, "  intel_fn11   %4d\n", unsafe.Offsetof(raw.IntelFn11))
	fmt.Fprintf(w, "  intel_fn12h  %4d\n", unsafe.Offsetof(raw.IntelFn12h))
	fmt.Fprintf(w, "  intel_fn14h  %4d\n", unsafe.Offsetof(raw.IntelFn14h))

	fmt.Fprintf(w, "cpu_id_t: %d bytes\n", unsafe.Sizeof(data))
	fmt.Fprintf(w, "  vendor_str   %4d\n", unsafe.Offsetof(data.VendorStr))
	fmt.Fprintf(w, "  brand_str    %4d\n", unsafe.Offsetof(data.BrandStr))
	fmt.Fprintf(w, "  vendor       %4d\n", unsafe.Offsetof(data.Vendor))
	fmt.Fprintf(w, "  flags        %4d\n", unsafe.Offsetof(data.Flags))
	fmt.Fprintf(w, "  family       %4d\n", unsafe.Offsetof(data.Family))
	fmt.Fprintf(w, "  l1_data_cache %3d\n", unsafe.Offsetof(data.L1DataCache))
	fmt.Fprintf(w, "  cpu_codename %4d\n", unsafe.Offsetof(data.CPUCodename))
	fmt.Fprintf(w, "  sse_size     %4d\n", unsafe.Offsetof(data.SSESize))
	fmt.Fprintf(w, "  sgx          %4d\n", unsafe.Offsetof(data.SGX))

	fmt.Fprintf(w, "cpu_sgx_t: %d bytes\n", unsafe.Sizeof(data.SGX))
	fmt.Fprintf(w, "  num_epc_sections %d\n", unsafe.Offsetof(data.SGX.NumEPCSections))
	fmt.Fprintf(w, "  secs_attributes  %d\n", unsafe.Offsetof(data.SGX.SecsAttributes))
}
