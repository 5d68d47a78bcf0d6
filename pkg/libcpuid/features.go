package libcpuid

// Feature indexes from cpu_feature_t. Each value is the position of the
// feature's slot in IDRecord.Flags and must never change.
const (
	FeatureFPU              = 0
	FeatureVME              = 1
	FeatureDE               = 2
	FeaturePSE              = 3
	FeatureTSC              = 4
	FeatureMSR              = 5
	FeaturePAE              = 6
	FeatureMCE              = 7
	FeatureCX8              = 8
	FeatureAPIC             = 9
	FeatureMTRR             = 10
	FeatureSEP              = 11
	FeaturePGE              = 12
	FeatureMCA              = 13
	FeatureCMOV             = 14
	FeaturePAT              = 15
	FeaturePSE36            = 16
	FeaturePN               = 17
	FeatureCLFLUSH          = 18
	FeatureDTS              = 19
	FeatureACPI             = 20
	FeatureMMX              = 21
	FeatureFXSR             = 22
	FeatureSSE              = 23
	FeatureSSE2             = 24
	FeatureSS               = 25
	FeatureHT               = 26
	FeatureTM               = 27
	FeatureIA64             = 28
	FeaturePBE              = 29
	FeaturePNI              = 30
	FeaturePCLMUL           = 31
	FeatureDTS64            = 32
	FeatureMONITOR          = 33
	FeatureDSCPL            = 34
	FeatureVMX              = 35
	FeatureSMX              = 36
	FeatureEST              = 37
	FeatureTM2              = 38
	FeatureSSSE3            = 39
	FeatureCID              = 40
	FeatureCX16             = 41
	FeatureXTPR             = 42
	FeaturePDCM             = 43
	FeatureDCA              = 44
	FeatureSSE41            = 45
	FeatureSSE42            = 46
	FeatureSYSCALL          = 47
	FeatureXD               = 48
	FeatureMOVBE            = 49
	FeaturePOPCNT           = 50
	FeatureAES              = 51
	FeatureXSAVE            = 52
	FeatureOSXSAVE          = 53
	FeatureAVX              = 54
	FeatureMMXEXT           = 55
	FeatureAMD3DNow         = 56
	FeatureAMD3DNowExt      = 57
	FeatureNX               = 58
	FeatureFXSROpt          = 59
	FeatureRDTSCP           = 60
	FeatureLM               = 61
	FeatureLAHFLM           = 62
	FeatureCMPLegacy        = 63
	FeatureSVM              = 64
	FeatureABM              = 65
	FeatureSSE4A            = 66
	FeatureMisalignSSE      = 67
	FeatureAMD3DNowPrefetch = 68
	FeatureOSVW             = 69
	FeatureIBS              = 70
	FeatureSSE5             = 71
	FeatureSKINIT           = 72
	FeatureWDT              = 73
	FeatureTS               = 74
	FeatureFID              = 75
	FeatureVID              = 76
	FeatureTTP              = 77
	FeatureTMAMD            = 78
	FeatureSTC              = 79
	FeatureSteps100MHz      = 80
	FeatureHWPState         = 81
	FeatureConstantTSC      = 82
	FeatureXOP              = 83
	FeatureFMA3             = 84
	FeatureFMA4             = 85
	FeatureTBM              = 86
	FeatureF16C             = 87
	FeatureRDRAND           = 88
	FeatureX2APIC           = 89
	FeatureCPB              = 90
	FeatureAPERFMPERF       = 91
	FeaturePFI              = 92
	FeaturePA               = 93
	FeatureAVX2             = 94
	FeatureBMI1             = 95
	FeatureBMI2             = 96
	FeatureHLE              = 97
	FeatureRTM              = 98
	FeatureAVX512F          = 99
	FeatureAVX512DQ         = 100
	FeatureAVX512PF         = 101
	FeatureAVX512ER         = 102
	FeatureAVX512CD         = 103
	FeatureSHANI            = 104
	FeatureAVX512BW         = 105
	FeatureAVX512VL         = 106
	FeatureSGX              = 107
	FeatureRDSEED           = 108
	FeatureADX              = 109

	NumFeatures = 110
)

// SGX feature indexes from cpu_sgx_feature_t, positions in SGXRecord.Flags.
const (
	SGXFeatureSGX1 = 0
	SGXFeatureSGX2 = 1

	NumSGXFeatures = 2
)
