//    AristarchusGoAnalyzer
//    Copyright: E Gunderson 2024-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package vv

const (
	TERMINALTEXT = `Copyright (C) %s / %s
      %s

      This program comes with ABSOLUTELY NO WARRANTY; without even the
      implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.

      This is free software, and you are welcome to redistribute it and/or
      modify it under the terms of the GNU General Public License version 3.`

	PROJYEAR = "2024-26"
	PROJAUTH = "E. Gunderson"
	PROJMAIL = "Department of Classics, 125 Queen’s Park, Toronto, ON  M5S 2C7 Canada"
	PROJURL  = "https://github.com/e-gun/AristarchusGoAnalyzer"

	HELPTEXTTEMPLATE = `S3command line optionsS0:
   C1-bgC0 C2{num}C0    bigram minimum pair count [C6currentC0: C3{{.bgmin}}C0]
   C1-btC0 C2{num}C0    bigram association score threshold [C6currentC0: C3{{.bgthresh}}C0]
   C1-bwC0          disable color output in the console
   C1-cfC0 C2{string}C0 read the corpus from this CSV file
   C1-gcC0 C2{string}C0 name of the group column in the corpus file [C6currentC0: C3{{.grpcol}}C0]
   C1-glC0 C2{num}C0    set golang log level (C10-5C0) [C6currentC0: C3{{.agall}}C0]
   C1-elC0 C2{num}C0    set echo server log level (C10-3C0) [C6currentC0: C3{{.echoll}}C0]
   C1-hC0           print this help information
   C1-ldC0 C2{num}C0    number of topics for the lda model (C11-{{.maxtopics}}C0) [C6currentC0: C3{{.topics}}C0]
   C1-mdC0 C2{string}C0 set the embedding model type; available: C3gloveC0, C3lexvecC0, and C3w2vC0 [C6currentC0: C3{{.vmodel}}C0]
   C1-odC0 C2{string}C0 write the reports to this directory [C6currentC0: C3{{.outdir}}C0]
   C1-pcC0          enable CPU profiling run
   C1-pmC0          enable MEM profiling run
   C1-qC0           quiet startup: suppress copyright notice
   C1-rpC0          serve the report directory after the run; see also C1-saC0 and C1-spC0
   C1-rvC0          reset the stored model table before the run
   C1-saC0 C2{string}C0 server IP address [C6currentC0: C3{{.host}}C0]
   C1-spC0 C2{num}C0    server port [C6currentC0: C3{{.port}}C0]
   C1-stC0          run the self-test suite; repeat the flag to iterate: e.g., "C1-st -stC0" will run twice
   C1-tcC0 C2{string}C0 name of the text column in the corpus file [C6currentC0: C3{{.txtcol}}C0]
   C1-tkC0          turn on the uptime ticker [unavailable if OS is Windows]
   C1-vC0           print version info and exit
   C1-vvC0          print full version info and exit
   C1-wcC0 C2{int}C0    number of workers [C1cpu_countC0 is C3{{.cpus}}C0][C6currentC0: C3{{.workers}}C0]

     S1NB:S0 a properly formatted version of "C3{{.conffile}}C0" in "C3{{.home}}C0" configures everything for you.
         Sample configuration files can be found at
             C3{{.projurl}}C0
`
)
