//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package str

type CurrentConfiguration struct {
	BigramMin     int
	BigramThresh  float64
	BlackAndWhite bool
	CorpusFile    string
	DbDebug       bool
	EchoLog       int // 0: "none", 1: "terse", 2: "prolix", 3: "prolix+remoteip"
	GroupColumn   string
	Gzip          bool
	HostIP        string
	HostPort      int
	LdaTopics     int
	LogLevel      int
	Lowercase     bool
	ManualGC      bool
	MaxDiffTerms  int
	MinDocFreq    int
	MaxDocFreq    float64
	PGLogin       PostgresLogin
	PosRetain     string
	ProfileCPU    bool
	ProfileMEM    bool
	QuietStart    bool
	ReportDir     string
	ResetModels   bool
	SelfTest      int
	ServeReports  bool
	SqliteFile    string
	TextColumn    string
	TickerActive  bool
	UsePostgres   bool
	VectorModel   string
	VectorNeighb  int
	VectorChtHt   string
	VectorChtWd   string
	WorkerCount   int
}

type PostgresLogin struct {
	Host   string
	Port   int
	User   string
	Pass   string
	DBName string
}
