package content

// Section is one entry of the fixed report catalog. Body is markdown,
// rendered client-side. Interactive marks the section hosting the upload
// demo.
type Section struct {
	Name        string  `json:"name"`
	Body        string  `json:"body"`
	Charts      []Chart `json:"charts,omitempty"`
	Interactive bool    `json:"interactive,omitempty"`
}

// sectionOrder fixes both the navigation order and the catalog key set.
var sectionOrder = []string{
	"General",
	"Introduction",
	"Literature Review",
	"Proposed Solution or Approach",
	"Methodology and Implementation",
	"Evaluation and Analysis of Trade-offs",
	"Conclusion",
}

// Names returns the section names in display order.
func Names() []string {
	names := make([]string, len(sectionOrder))
	copy(names, sectionOrder)
	return names
}

// Get looks a section up by its exact name.
func Get(name string) (*Section, bool) {
	body, ok := sectionBodies[name]
	if !ok {
		return nil, false
	}

	s := &Section{Name: name, Body: body}
	switch name {
	case "Proposed Solution or Approach":
		s.Charts = []Chart{hotColdPie()}
	case "Evaluation and Analysis of Trade-offs":
		s.Charts = []Chart{reductionBar(), savingsLine()}
	case "Methodology and Implementation":
		s.Interactive = true
	}
	return s, true
}

var sectionBodies = map[string]string{
	"General": `### Managing Space Complexity in the Age of Expanding Digital Data

With the explosion of **server logs, IoT telemetry, transactional records, multimedia streams, and user-generated content**, data growth has emerged as one of the most pressing challenges in modern computing. Organizations must store petabytes to exabytes of information while keeping it accessible, reliable, and cost-efficient.

Traditional approaches such as simple database scaling or hardware expansion are increasingly insufficient. As data volume accelerates faster than storage hardware cost reductions, space complexity has evolved from a theoretical concern into a practical, enterprise-level bottleneck: **ballooning storage bills, degraded query performance, and complex maintenance overhead**.

No single technique addresses these challenges in isolation. Organizations integrate several strategies:

- **Data deduplication:** removing redundant copies of records or files.
- **Compression:** lossless or lossy encodings (gzip, Lempel-Ziv, columnar compression) that significantly reduce storage consumption.
- **Aggregation and summarization:** reducing fine-grained data into higher-level summaries where appropriate.
- **Tiered storage:** fast media for fresh data, archival storage for older, less-accessed datasets.
- **Adaptive management policies:** adjusting storage and processing approaches based on observed access patterns.

As datasets continue to grow, addressing space complexity remains central to scalable, sustainable, high-performance computing infrastructure.`,

	"Introduction": `### Introduction

Organizations face the dual challenge of rapid data ingestion and long-term storage demands. Left unchecked, uncontrolled data accumulation leads to degraded query performance, ballooning storage costs, and complex maintenance overhead.

#### 1.1 The Data Explosion Phenomenon
The contemporary digital ecosystem is witnessing an exponential surge in data generation. Projections estimate that by 2025, global data creation will surpass **175 zettabytes**. The drivers are multifaceted: IoT sensors streaming constant telemetry, user-generated content at social-media scale, conversational AI producing automated content, and the digitization of traditionally analog processes. Enterprises manage data from **hundreds of distinct sources**, each varying in format, schema, and structure.

#### 1.2 The Systemic Impact of Unchecked Data Growth
Beyond storage expansion, unchecked accumulation carries **economic, infrastructural, and environmental consequences**: direct hardware and cloud expenditure, *dark data* that is stored but never analyzed, data centers consuming 2-3% of global electricity, and hardware lifecycles contributing to e-waste.

#### 1.3 Thesis Statement and Contribution
Isolated techniques such as compression, deduplication, and aggregation mitigate data growth but cannot address the systemic challenge alone. This report argues for a **hybrid, policy-driven data reduction framework** that orchestrates multiple reduction techniques across the entire data lifecycle, applying them according to the evolving **value profile** of data: its age, access frequency, and business relevance.

The contributions are threefold: a multi-stage architecture that categorizes data into *Hot* and *Cold* tiers; a working implementation of the reduction pipeline; and an evaluation of the trade-offs across **space, time, and computation**.`,

	"Literature Review": `### Literature Review

#### 2.1 Foundational Data Management Strategies
Effective data reduction is a strategic problem before it is a technical one. A comprehensive **Data Management Strategy** governs the entire lifecycle of data, anchored by **Data Governance** (ownership, accountability, quality standards) and **Data Lifecycle Management** (active use, infrequent access, archival, deletion), with retention policies balancing regulatory compliance against business requirements.

#### 2.2 Taxonomy of Data Reduction Techniques
The literature classifies reduction methods into three families:

**Compression.** Lossless techniques (DEFLATE/gzip, Zstandard) dominate enterprise systems because they guarantee exact reconstruction. The key limitation is the trade-off between compression ratio and latency, and compressed streams are often not seekable.

**Deduplication.** Removes duplicate records or chunks across datasets. High storage savings on redundant workloads, but resource-intensive and capable of degrading read performance through fragmented I/O.

**Summarization/Aggregation.** Stores derived metrics instead of raw events. The highest reduction ratios, but inherently lossy and unsuitable for forensic analysis or compliance auditing.

#### 2.3 The Research Gap
Each method is well-studied individually, yet combining them without coordination can be counterproductive. The gap is a **hybrid, policy-driven framework** that selects the appropriate strategy based on data age, business value, access patterns, and compliance needs.

| Technique | Principle | Reduction Potential | Data Fidelity |
|-----------|-----------|---------------------|---------------|
| Compression | Encodes data to fewer bits | Low-Medium (2-10x) | 100% (lossless) |
| Deduplication | Stores one copy of duplicates | Medium-Very High (5-50x+) | 100% |
| Aggregation | Summarizes to lower granularity | Very High (100x+) | Lossy |`,

	"Proposed Solution or Approach": `### Proposed Solution or Approach

This study proposes a multi-layered **data management pipeline** that optimizes storage, preserves data quality, and scales without compromising analytical value.

#### 3.1 Data Quality Assurance (Preprocessing)
Before optimization techniques apply, retained data must be accurate and relevant. Preprocessing eliminates duplicate entries and incomplete records: IoT sensors frequently emit redundant time-series logs, and event platforms capture identical events through retry mechanisms. Removing such redundancy reduces volume and **improves dataset reliability**.

#### 3.2 Data Distribution Across Tiers
The solution introduces a **tiered storage model**: **hot data** (recent, frequently accessed) stays on high-performance media, while **cold data** (older archives) moves to low-cost compressed storage. Query performance on fresh data stays fast while historical data remains available without inflating costs.

#### 3.3 Data Reduction through Compression
The pipeline applies **lossless compression** (gzip-family) to the cleaned output, balancing space efficiency against analytical fidelity.

#### 3.4 Feedback-Driven Adaptation
Continuous monitoring of usage metrics determines whether datasets should be promoted or demoted across tiers, keeping space-management policies context-aware rather than static.`,

	"Methodology and Implementation": `### Methodology and Implementation

The approach is demonstrated with a working pipeline:

- Uploading a dataset.
- Automatic deduplication and removal of incomplete rows.
- Distribution of recent vs. old data (last 30 days kept as "hot" data).
- Reporting how many rows were removed and how the sizes compare.
- Providing downloadable CSV and gzip versions.

Upload your dataset below to see the approach in action. Supported formats: csv, xlsx, json, txt, pdf, docx.`,

	"Evaluation and Analysis of Trade-offs": `### Evaluation and Analysis of Trade-offs

The evaluation focuses on the pipeline's ability to balance **space efficiency, computational overhead, and query responsiveness**.

#### Experimental Setup
A controlled 10 GB synthetic dataset represented enterprise workloads: **redundant data** (4 GB) benchmarking deduplication, **log data** (4 GB) testing lossless compression, and **time-series data** (2 GB) measuring aggregation.

#### Quantitative Results

| Data Type | Technique | Reduction Ratio | CPU Time (s/GB) | Read Latency (ms) |
|-----------|-----------|-----------------|-----------------|-------------------|
| Baseline | None | 1.0x | 0.0 | 0.15 |
| Redundant | Dedup | 25.3x | 18.5 | 2.80 |
| Logs | Gzip-9 | 8.2x | 12.1 | 45.50 |
| Time-Series | Aggregation | 3600.0x | 25.0 | 0.20 |

#### Observations
Deduplication achieved excellent reduction on redundant data at the cost of CPU and indexing overhead. Compression gave strong savings on repetitive logs but raised read latency. Aggregation produced the most dramatic reduction while discarding fine-grained detail. The hybrid application of all three averaged a **20x reduction**, and no single method worked universally well: higher reductions demand more CPU, and inline methods slow ingestion while post-processing methods need temporary storage.`,

	"Conclusion": `### Conclusion and Future Work

This study explored the challenges of **space complexity in modern data ecosystems** and proposed a multi-layered pipeline integrating deduplication, compression, and tiering. Each technique individually provides substantial savings, but their combined, workload-sensitive application balances storage cost against accessibility and analytical utility.

Key findings:
- **Deduplication** excels in highly redundant environments but introduces indexing overhead.
- **Compression** provides strong reductions for repetitive text but increases query latency.
- **Aggregation** yields exceptional reduction and fast queries at the cost of detail.
- **Hybrid adaptation** is essential; no single method is universally optimal.

Future work includes ML-driven policy adaptation, columnar formats (Parquet, ORC) for archival tiers, privacy-preserving deduplication, and evaluation against real-world workloads such as IoT streams and financial logs.`,
}
