package script

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// projectIDPattern is the allow-list for identifiers embedded in
// generated script text. The output runs as code on third-party
// pages, so anything outside this class is rejected outright.
var projectIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// ValidProjectID reports whether id is safe to embed in a script.
func ValidProjectID(id string) bool {
	return projectIDPattern.MatchString(id)
}

// ValidBaseURL reports whether apiBaseURL is safe to embed as a
// literal string value. Requires an absolute http(s) URL and rejects
// anything that could break out of a JS string literal.
func ValidBaseURL(apiBaseURL string) bool {
	if strings.ContainsAny(apiBaseURL, "'\"\\<> \t\r\n") {
		return false
	}
	u, err := url.Parse(apiBaseURL)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// Generate produces the embeddable client script for a project. The
// emitted program re-implements the djb2 assignment hash so variation
// selection happens entirely in the browser; the server only hands out
// the code and collects beacons.
func Generate(projectID, apiBaseURL string) (string, error) {
	if !ValidProjectID(projectID) {
		return "", fmt.Errorf("unsafe project identifier: %q", projectID)
	}
	if !ValidBaseURL(apiBaseURL) {
		return "", fmt.Errorf("unsafe api base url: %q", apiBaseURL)
	}

	return fmt.Sprintf(clientTemplate, projectID, strings.TrimRight(apiBaseURL, "/")), nil
}

// clientTemplate is the generated program. Every step runs inside a
// try/catch: a storage exception or malformed DOM must never throw
// into the host page. The beacon is an image load so it survives CSPs
// that block fetch/XHR but allow img-src.
const clientTemplate = `(function(){
  var P='%s';
  var A='%s';
  var VARS=['A','B','C','D'];

  // Guard against the same script tag loading twice on one page
  window.__spx=window.__spx||{};
  if(window.__spx[P])return;
  window.__spx[P]=true;

  function warn(e){
    if(window.console&&console.warn)console.warn('splitpixel:',e);
  }

  function hash(s){
    var h=5381;
    for(var i=0;i<s.length;i++){
      h=((h*33)^s.charCodeAt(i))>>>0;
    }
    return h;
  }

  function visitorId(){
    var id=null;
    try{id=localStorage.getItem('spx_vid');}catch(e){warn(e);}
    if(id)return id;
    id='v_'+Date.now().toString(36)+Math.random().toString(36).slice(2,10);
    // On storage failure the id lives for this page view only
    try{localStorage.setItem('spx_vid',id);}catch(e){warn(e);}
    return id;
  }

  function apply(v){
    document.documentElement.setAttribute('data-spx-variation',v);
    var els=document.querySelectorAll('[data-spx-show]');
    for(var i=0;i<els.length;i++){
      var list=(els[i].getAttribute('data-spx-show')||'').split(',');
      var show=false;
      for(var j=0;j<list.length;j++){
        if(list[j].replace(/\s/g,'')===v)show=true;
      }
      if(!show)els[i].style.display='none';
    }
    try{
      if(history.replaceState&&location.search.indexOf('?variation=')===-1&&location.search.indexOf('&variation=')===-1){
        var q=location.search?location.search+'&variation='+v:'?variation='+v;
        history.replaceState(null,'',location.pathname+q+location.hash);
      }
    }catch(e){warn(e);}
  }

  function track(vid,v){
    var img=new Image(1,1);
    img.src=A+'/track?v='+encodeURIComponent(vid)+'&p='+encodeURIComponent(P)+'&var='+v+'&t='+Date.now();
  }

  function announce(vid,v){
    window.splitpixel=window.splitpixel||{};
    window.splitpixel[P]={visitorId:vid,variation:v};
    try{
      var ev;
      if(typeof CustomEvent==='function'){
        ev=new CustomEvent('splitpixel:assigned',{detail:{project:P,visitorId:vid,variation:v}});
      }else{
        ev=document.createEvent('CustomEvent');
        ev.initCustomEvent('splitpixel:assigned',false,false,{project:P,visitorId:vid,variation:v});
      }
      document.dispatchEvent(ev);
    }catch(e){warn(e);}
  }

  function run(){
    try{
      var vid=visitorId();
      var v=VARS[hash(vid+':'+P)%%4];
      apply(v);
      track(vid,v);
      announce(vid,v);
    }catch(e){warn(e);}
  }

  if(document.readyState==='loading'){
    document.addEventListener('DOMContentLoaded',run);
  }else{
    run();
  }
})();
`
