package libcpuid

// flagBits locates each feature's bit in the raw CPUID leaves.
var flagBits = []flagBit{
	{FeatureFPU, leafBasic, 1, EDX, 0},
	{FeatureVME, leafBasic, 1, EDX, 1},
	{FeatureDE, leafBasic, 1, EDX, 2},
	{FeaturePSE, leafBasic, 1, EDX, 3},
	{FeatureTSC, leafBasic, 1, EDX, 4},
	{FeatureMSR, leafBasic, 1, EDX, 5},
	{FeaturePAE, leafBasic, 1, EDX, 6},
	{FeatureMCE, leafBasic, 1, EDX, 7},
	{FeatureCX8, leafBasic, 1, EDX, 8},
	{FeatureAPIC, leafBasic, 1, EDX, 9},
	{FeatureMTRR, leafBasic, 1, EDX, 12},
	{FeatureSEP, leafBasic, 1, EDX, 11},
	{FeaturePGE, leafBasic, 1, EDX, 13},
	{FeatureMCA, leafBasic, 1, EDX, 14},
	{FeatureCMOV, leafBasic, 1, EDX, 15},
	{FeaturePAT, leafBasic, 1, EDX, 16},
	{FeaturePSE36, leafBasic, 1, EDX, 17},
	{FeaturePN, leafBasic, 1, EDX, 18},
	{FeatureCLFLUSH, leafBasic, 1, EDX, 19},
	{FeatureDTS, leafBasic, 1, EDX, 21},
	{FeatureACPI, leafBasic, 1, EDX, 22},
	{FeatureMMX, leafBasic, 1, EDX, 23},
	{FeatureFXSR, leafBasic, 1, EDX, 24},
	{FeatureSSE, leafBasic, 1, EDX, 25},
	{FeatureSSE2, leafBasic, 1, EDX, 26},
	{FeatureSS, leafBasic, 1, EDX, 27},
	{FeatureHT, leafBasic, 1, EDX, 28},
	{FeatureTM, leafBasic, 1, EDX, 29},
	{FeatureIA64, leafBasic, 1, EDX, 30},
	{FeaturePBE, leafBasic, 1, EDX, 31},
	{FeaturePNI, leafBasic, 1, ECX, 0},
	{FeaturePCLMUL, leafBasic, 1, ECX, 1},
	{FeatureDTS64, leafBasic, 1, ECX, 2},
	{FeatureMONITOR, leafBasic, 1, ECX, 3},
	{FeatureDSCPL, leafBasic, 1, ECX, 4},
	{FeatureVMX, leafBasic, 1, ECX, 5},
	{FeatureSMX, leafBasic, 1, ECX, 6},
	{FeatureEST, leafBasic, 1, ECX, 7},
	{FeatureTM2, leafBasic, 1, ECX, 8},
	{FeatureSSSE3, leafBasic, 1, ECX, 9},
	{FeatureCID, leafBasic, 1, ECX, 10},
	{FeatureCX16, leafBasic, 1, ECX, 13},
	{FeatureXTPR, leafBasic, 1, ECX, 14},
	{FeaturePDCM, leafBasic, 1, ECX, 15},
	{FeatureDCA, leafBasic, 1, ECX, 18},
	{FeatureSSE41, leafBasic, 1, ECX, 19},
	{FeatureSSE42, leafBasic, 1, ECX, 20},
	{FeatureSYSCALL, leafExtended, 1, EDX, 11},
	{FeatureXD, leafExtended, 1, EDX, 20},
	{FeatureMOVBE, leafBasic, 1, ECX, 22},
	{FeaturePOPCNT, leafBasic, 1, ECX, 23},
	{FeatureAES, leafBasic, 1, ECX, 25},
	{FeatureXSAVE, leafBasic, 1, ECX, 26},
	{FeatureOSXSAVE, leafBasic, 1, ECX, 27},
	{FeatureAVX, leafBasic, 1, ECX, 28},
	{FeatureMMXEXT, leafExtended, 1, EDX, 22},
	{FeatureAMD3DNow, leafExtended, 1, EDX, 31},
	{FeatureAMD3DNowExt, leafExtended, 1, EDX, 30},
	{FeatureNX, leafExtended, 1, EDX, 20},
	{FeatureFXSROpt, leafExtended, 1, EDX, 25},
	{FeatureRDTSCP, leafExtended, 1, EDX, 27},
	{FeatureLM, leafExtended, 1, EDX, 29},
	{FeatureLAHFLM, leafExtended, 1, ECX, 0},
	{FeatureCMPLegacy, leafExtended, 1, ECX, 1},
	{FeatureSVM, leafExtended, 1, ECX, 2},
	{FeatureABM, leafExtended, 1, ECX, 5},
	{FeatureSSE4A, leafExtended, 1, ECX, 6},
	{FeatureMisalignSSE, leafExtended, 1, ECX, 7},
	{FeatureAMD3DNowPrefetch, leafExtended, 1, ECX, 8},
	{FeatureOSVW, leafExtended, 1, ECX, 9},
	{FeatureIBS, leafExtended, 1, ECX, 10},
	{FeatureSSE5, leafExtended, 1, ECX, 11},
	{FeatureSKINIT, leafExtended, 1, ECX, 12},
	{FeatureWDT, leafExtended, 1, ECX, 13},
	{FeatureTS, leafExtended, 7, EDX, 0},
	{FeatureFID, leafExtended, 7, EDX, 1},
	{FeatureVID, leafExtended, 7, EDX, 2},
	{FeatureTTP, leafExtended, 7, EDX, 3},
	{FeatureTMAMD, leafExtended, 7, EDX, 4},
	{FeatureSTC, leafExtended, 7, EDX, 5},
	{FeatureSteps100MHz, leafExtended, 7, EDX, 6},
	{FeatureHWPState, leafExtended, 7, EDX, 7},
	{FeatureConstantTSC, leafExtended, 7, EDX, 8},
	{FeatureXOP, leafExtended, 1, ECX, 11},
	{FeatureFMA3, leafBasic, 1, ECX, 12},
	{FeatureFMA4, leafExtended, 1, ECX, 16},
	{FeatureTBM, leafExtended, 1, ECX, 21},
	{FeatureF16C, leafBasic, 1, ECX, 29},
	{FeatureRDRAND, leafBasic, 1, ECX, 30},
	{FeatureX2APIC, leafBasic, 1, ECX, 21},
	{FeatureCPB, leafExtended, 7, EDX, 9},
	{FeatureAPERFMPERF, leafExtended, 7, EDX, 10},
	{FeaturePFI, leafExtended, 7, EDX, 11},
	{FeaturePA, leafExtended, 7, EDX, 12},
	{FeatureAVX2, leafBasic, 7, EBX, 5},
	{FeatureBMI1, leafBasic, 7, EBX, 3},
	{FeatureBMI2, leafBasic, 7, EBX, 8},
	{FeatureHLE, leafBasic, 7, EBX, 4},
	{FeatureRTM, leafBasic, 7, EBX, 11},
	{FeatureAVX512F, leafBasic, 7, EBX, 16},
	{FeatureAVX512DQ, leafBasic, 7, EBX, 17},
	{FeatureAVX512PF, leafBasic, 7, EBX, 26},
	{FeatureAVX512ER, leafBasic, 7, EBX, 27},
	{FeatureAVX512CD, leafBasic, 7, EBX, 28},
	{FeatureSHANI, leafBasic, 7, EBX, 29},
	{FeatureAVX512BW, leafBasic, 7, EBX, 30},
	{FeatureAVX512VL, leafBasic, 7, EBX, 31},
	{FeatureSGX, leafBasic, 7, EBX, 2},
	{FeatureRDSEED, leafBasic, 7, EBX, 18},
	{FeatureADX, leafBasic, 7, EBX, 19},
}
