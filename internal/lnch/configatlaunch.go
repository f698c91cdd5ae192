//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package lnch

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"text/template"

	"github.com/e-gun/AristarchusGoAnalyzer/internal/mm"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/str"
	"github.com/e-gun/AristarchusGoAnalyzer/internal/vv"
	"golang.org/x/exp/slices"
)

var (
	Config *str.CurrentConfiguration
	Msg    = mm.NewMessageMaker()
)

// LookForConfigFile - test to see if we can find a config file; if not write a default one into the config directory
func LookForConfigFile() {
	const (
		WROTE = "LookForConfigFile() wrote a default configuration file: '%s'"
		FAIL1 = "cannot find UserHomeDir"
		FAIL2 = "LookForConfigFile() could not write '%s'"
	)

	_, a := os.Stat(fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGPROLIX))

	var b error

	h, e := os.UserHomeDir()
	if e != nil {
		// how likely is this...?
		b = errors.New(FAIL1)
	} else {
		_, b = os.Stat(fmt.Sprintf(vv.CONFIGALTAPTH, h) + vv.CONFIGPROLIX)
	}

	notfound := (a != nil) && (b != nil)

	if notfound {
		pd := fmt.Sprintf(vv.CONFIGALTAPTH, h)
		_ = os.MkdirAll(pd, os.FileMode(0700))
		fn := pd + vv.CONFIGPROLIX
		content, err := json.MarshalIndent(BuildDefaultConfig(), "", vv.JSONINDENT)
		if err == nil {
			err = os.WriteFile(fn, content, vv.WRITEPERMS)
		}
		if err != nil {
			Msg.WARN(fmt.Sprintf(FAIL2, fn))
			return
		}
		Msg.NOTE(fmt.Sprintf(WROTE, fn))
	}
}

// ConfigAtLaunch - read the configuration values from JSON and/or command line
func ConfigAtLaunch() {
	const (
		FAIL1 = "Could not parse your information as a valid collection of credentials. Use the following template:"
		FAIL2 = `"{\"Pass\": \"YOURPASSWORDHERE\" ,\"Host\": \"127.0.0.1\", \"Port\": 5432, \"DBName\": \"aristarchusDB\" ,\"User\": \"aga_wr\"}"`
		FAIL3 = `Could not parse the information in '%s'. Skipping and attempting to use built-in defaults instead.`
		FAIL5 = "Refusing to set a workercount greater than NumCPU: %d > %d ---> setting workercount value to NumCPU: %d"
		FAIL6 = "Could not open '%s'"
		FAIL7 = "ConfigAtLaunch() failed to execute help text template"
		FAIL8 = "dropping unknown part-of-speech class '%s' from the retain list"
		FAIL9 = "unknown embedding model '%s'; using '%s' instead"
	)

	Config = BuildDefaultConfig()

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)
	prolixcfg := fmt.Sprintf("%s/%s", h, vv.CONFIGPROLIX)

	loadedcfg, e := os.Open(prolixcfg)
	if e != nil {
		Msg.CRIT(fmt.Sprintf(FAIL6, prolixcfg))
	}

	decoderc := json.NewDecoder(loadedcfg)
	confc := str.CurrentConfiguration{}
	errc := decoderc.Decode(&confc)
	_ = loadedcfg.Close()

	if errc == nil {
		Config = &confc
	} else {
		Msg.CRIT(fmt.Sprintf(FAIL3, prolixcfg))
	}

	// an old or hand-trimmed CONFIGPROLIX might zero out values that must never be zero
	if Config.TextColumn == "" {
		Config.TextColumn = vv.DEFAULTTEXTCOLUMN
	}

	if Config.GroupColumn == "" {
		Config.GroupColumn = vv.DEFAULTGROUPCOLUMN
	}

	if Config.BigramMin == 0 {
		Config.BigramMin = vv.BIGRAMMINCOUNT
	}

	if Config.MaxDocFreq == 0 {
		Config.MaxDocFreq = vv.DEFAULTMAXDOCFREQ
	}

	if Config.LdaTopics == 0 {
		Config.LdaTopics = vv.LDATOPICS
	}

	if Config.WorkerCount == 0 {
		Config.WorkerCount = runtime.NumCPU()
	}

	args := os.Args[1:len(os.Args)]

	help := func() {
		PrintVersion(*Config)
		PrintBuildInfo(*Config)

		m := map[string]interface{}{
			"agall":     Config.LogLevel,
			"bgmin":     Config.BigramMin,
			"bgthresh":  Config.BigramThresh,
			"conffile":  vv.CONFIGPROLIX,
			"cpus":      runtime.NumCPU(),
			"echoll":    Config.EchoLog,
			"grpcol":    Config.GroupColumn,
			"home":      h,
			"host":      Config.HostIP,
			"maxtopics": vv.LDAMAXTOPICS,
			"outdir":    Config.ReportDir,
			"port":      Config.HostPort,
			"projurl":   vv.PROJURL,
			"topics":    Config.LdaTopics,
			"txtcol":    Config.TextColumn,
			"vmodel":    Config.VectorModel,
			"workers":   Config.WorkerCount}

		t := template.Must(template.New("").Parse(vv.HELPTEXTTEMPLATE))

		var b bytes.Buffer
		if ee := t.Execute(&b, m); ee != nil {
			Msg.CRIT(FAIL7)
		}
		fmt.Println(Msg.Styled(Msg.Color(b.String())))

		os.Exit(0)
	}

	for i, a := range args {
		switch a {
		case "-vv":
			PrintVersion(*Config)
			PrintBuildInfo(*Config)
			os.Exit(1)
		case "-v":
			fmt.Println(vv.VERSION + VersSuppl)
			os.Exit(1)
		case "-bg":
			bg, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.BigramMin = bg
		case "-bt":
			bt, err := strconv.ParseFloat(args[i+1], 64)
			Msg.EC(err)
			Config.BigramThresh = bt
		case "-bw":
			Config.BlackAndWhite = true
		case "-cf":
			Config.CorpusFile = args[i+1]
		case "-db":
			Config.DbDebug = true
		case "-el":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.EchoLog = ll
		case "-gc":
			Config.GroupColumn = args[i+1]
		case "-gl":
			ll, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LogLevel = ll
		case "-gz":
			Config.Gzip = true
		case "-h":
			help()
		case "-ld":
			ld, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.LdaTopics = ld
		case "-md":
			Config.VectorModel = args[i+1]
		case "-od":
			Config.ReportDir = args[i+1]
		case "-pc":
			Config.ProfileCPU = true
		case "-pg":
			js := args[i+1]
			var pl str.PostgresLogin
			err := json.Unmarshal([]byte(js), &pl)
			if err != nil {
				Msg.MAND(FAIL1)
				Msg.CRIT(FAIL2)
			} else {
				Config.PGLogin = pl
				Config.UsePostgres = true
			}
		case "-pm":
			Config.ProfileMEM = true
		case "-q":
			Config.QuietStart = true
		case "-rp":
			Config.ServeReports = true
		case "-rv":
			Config.ResetModels = true
		case "-sa":
			Config.HostIP = args[i+1]
		case "-sp":
			p, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.HostPort = p
		case "-sq":
			Config.SqliteFile = args[i+1]
		case "-st":
			Config.SelfTest += 1
		case "-tc":
			Config.TextColumn = args[i+1]
		case "-tk":
			Config.TickerActive = true
		case "-wc":
			wc, err := strconv.Atoi(args[i+1])
			Msg.EC(err)
			Config.WorkerCount = wc
		default:
			// do nothing
		}
	}

	y := ""
	if errc != nil {
		y = " *not*"
	}
	Msg.TMI(fmt.Sprintf("'%s%s'%s loaded", h, vv.CONFIGPROLIX, y))

	if Config.UsePostgres {
		SetConfigPass(Config)
	}

	if !slices.Contains(vv.KnownModels, Config.VectorModel) {
		Msg.CRIT(fmt.Sprintf(FAIL9, Config.VectorModel, vv.VECTORMODELDEFAULT))
		Config.VectorModel = vv.VECTORMODELDEFAULT
	}

	// a typo in the retain list would silently match nothing
	pr := strings.Fields(Config.PosRetain)
	kept := make([]string, 0, len(pr))
	for _, p := range pr {
		if slices.Contains(vv.PosClasses, p) {
			kept = append(kept, p)
		} else {
			Msg.CRIT(fmt.Sprintf(FAIL8, p))
		}
	}
	Config.PosRetain = strings.Join(kept, " ")

	if Config.LdaTopics > vv.LDAMAXTOPICS {
		Config.LdaTopics = vv.LDAMAXTOPICS
	}

	if Config.WorkerCount > runtime.NumCPU() {
		Msg.CRIT(fmt.Sprintf(FAIL5, Config.WorkerCount, runtime.NumCPU(), runtime.NumCPU()))
		Config.WorkerCount = runtime.NumCPU()
	}

	UpdateMessageMakerWithConfig(Msg)
}

// BuildDefaultConfig - return a CurrentConfiguration filled out with various default values
func BuildDefaultConfig() *str.CurrentConfiguration {
	var c str.CurrentConfiguration
	c.BigramMin = vv.BIGRAMMINCOUNT
	c.BigramThresh = vv.BIGRAMTHRESHOLD
	c.BlackAndWhite = false
	c.CorpusFile = ""
	c.DbDebug = false
	c.EchoLog = vv.DEFAULTECHOLOGLEVEL
	c.GroupColumn = vv.DEFAULTGROUPCOLUMN
	c.Gzip = false
	c.HostIP = vv.SERVEDFROMHOST
	c.HostPort = vv.SERVEDFROMPORT
	c.LdaTopics = vv.LDATOPICS
	c.LogLevel = vv.DEFAULTGOLOGLEVEL
	c.Lowercase = vv.DEFAULTLOWERCASE
	c.ManualGC = false
	c.MaxDiffTerms = vv.DIFFERENCETOPN
	c.MinDocFreq = vv.DEFAULTMINDOCFREQ
	c.MaxDocFreq = vv.DEFAULTMAXDOCFREQ
	c.PosRetain = vv.DEFAULTPOSRETAIN
	c.ProfileCPU = false
	c.ProfileMEM = false
	c.QuietStart = false
	c.ReportDir = vv.DEFAULTREPORTS
	c.ResetModels = false
	c.SelfTest = 0
	c.ServeReports = false
	c.SqliteFile = vv.DEFAULTSQLITEFILE
	c.TextColumn = vv.DEFAULTTEXTCOLUMN
	c.TickerActive = vv.TICKERISACTIVE
	c.UsePostgres = false
	c.VectorChtHt = vv.DEFAULTCHRTHT
	c.VectorChtWd = vv.DEFAULTCHRTWD
	c.VectorModel = vv.VECTORMODELDEFAULT
	c.VectorNeighb = vv.VECTORNEIGHBORS
	c.WorkerCount = runtime.NumCPU()

	pl := str.PostgresLogin{
		Host:   vv.DEFAULTPSQLHOST,
		Port:   vv.DEFAULTPSQLPORT,
		User:   vv.DEFAULTPSQLUSER,
		Pass:   "",
		DBName: vv.DEFAULTPSQLDB,
	}

	c.PGLogin = pl

	return &c
}

// SetConfigPass - make sure that Config.PGLogin.Pass != "" when postgres storage was requested
func SetConfigPass(cfg *str.CurrentConfiguration) {
	const (
		FAIL3     = "FAILED to load database credentials from any of '%s', '%s' or '%s'"
		FAIL4     = "Disabling postgres storage for this run. Fitted models will go to sqlite instead."
		FAIL6     = "Could not open '%s'"
		BLANKPASS = "PostgreSQLPassword is blank. Check your '%s' file. NB: 'PostgreSQLPassword ≠ 'PosgreSQLPassword'.\n"
	)
	type ConfigFile struct {
		PostgreSQLPassword string
	}

	uh, _ := os.UserHomeDir()
	h := fmt.Sprintf(vv.CONFIGALTAPTH, uh)

	cf := fmt.Sprintf("%s/%s", vv.CONFIGLOCATION, vv.CONFIGBASIC)
	acf := fmt.Sprintf("%s/%s", h, vv.CONFIGBASIC)

	if Config.PGLogin.Pass == "" {
		cfa, ee := os.Open(cf)
		if ee != nil {
			Msg.TMI(fmt.Sprintf(FAIL6, cf))
		}
		cfb, ee := os.Open(acf)
		if ee != nil {
			Msg.TMI(fmt.Sprintf(FAIL6, acf))
		}

		defer func(cfa *os.File) {
			err := cfa.Close()
			if err != nil {
			} // the file was almost certainly not found in the first place...
		}(cfa)
		defer func(cfb *os.File) {
			err := cfb.Close()
			if err != nil {
			} // the file was almost certainly not found in the first place...
		}(cfb)

		decodera := json.NewDecoder(cfa)
		confa := ConfigFile{}
		erra := decodera.Decode(&confa)

		decoderb := json.NewDecoder(cfb)
		confb := ConfigFile{}
		errb := decoderb.Decode(&confb)

		if erra != nil && errb != nil {
			Msg.CRIT(fmt.Sprintf(FAIL3, cf, acf, fmt.Sprintf("%s/%s", h, vv.CONFIGPROLIX)))
			Msg.CRIT(FAIL4)
			cfg.UsePostgres = false
			return
		}

		thecfg := ConfigFile{}
		if erra == nil {
			thecfg = confa
		} else {
			thecfg = confb
		}

		if thecfg.PostgreSQLPassword == "" {
			Msg.MAND(fmt.Sprintf(BLANKPASS, vv.CONFIGBASIC))
		}

		cfg.PGLogin = str.PostgresLogin{
			Host:   vv.DEFAULTPSQLHOST,
			Port:   vv.DEFAULTPSQLPORT,
			User:   vv.DEFAULTPSQLUSER,
			DBName: vv.DEFAULTPSQLDB,
			Pass:   thecfg.PostgreSQLPassword,
		}
	}
}
